package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"turn-chat/domain"
	"turn-chat/transport"
)

// SessionHandler is the slice of the session the receiver needs.
type SessionHandler interface {
	HandleLine(p domain.Participant, line string)
	HandleDisconnect(p domain.Participant)
}

// Receiver is the single inbound worker of one connection. It reads
// lines in arrival order and hands them to the session; any end of
// stream becomes a disconnect for its participant.
type Receiver struct {
	peer    *transport.Peer
	session SessionHandler
	log     *slog.Logger
}

func NewReceiver(peer *transport.Peer, session SessionHandler, log *slog.Logger) *Receiver {
	return &Receiver{peer: peer, session: session, log: log}
}

func (w *Receiver) Run(ctx context.Context) error {
	dept := w.peer.Dept()
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := w.peer.ReceiveLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				w.log.Debug("Receive failed", "dept", dept, "error", err)
			}
			w.session.HandleDisconnect(dept)
			return nil
		}
		w.session.HandleLine(dept, line)
	}
}
