package workers

import (
	"context"
	"log/slog"

	"turn-chat/contract"
	"turn-chat/domain"
	"turn-chat/transport"
)

// TurnNotifier is the waiting side of the turn contract: one notifier
// per participant parks in WaitForTurn and pushes a TURN frame to its
// peer each time the grant lands. It exits when the coordinator closes,
// so no notifier ever blocks past session shutdown.
type TurnNotifier struct {
	dept  domain.Participant
	peer  *transport.Peer
	turns contract.ITurnCoordinator
	log   *slog.Logger
}

func NewTurnNotifier(dept domain.Participant, peer *transport.Peer, turns contract.ITurnCoordinator, log *slog.Logger) *TurnNotifier {
	return &TurnNotifier{dept: dept, peer: peer, turns: turns, log: log}
}

func (w *TurnNotifier) Run(ctx context.Context) error {
	for {
		proceed, err := w.turns.WaitForTurn(ctx, w.dept)
		if err != nil {
			return nil
		}
		if !proceed {
			w.log.Debug("Turn coordinator closed", "dept", w.dept)
			return nil
		}

		// A withdrawn grant can still race its consumption; only the
		// current holder may be notified.
		if holder, ok := w.turns.Holder(); !ok || holder != w.dept {
			continue
		}
		if err := w.peer.SendLine(domain.FrameTurn); err != nil {
			w.log.Debug("TURN not delivered", "dept", w.dept, "error", err)
		}
	}
}
