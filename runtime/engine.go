package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"turn-chat/contract"
	"turn-chat/domain"
	"turn-chat/domain/event"
	"turn-chat/moderation"
	"turn-chat/observability"
	"turn-chat/runtime/workers"
	"turn-chat/transcript"
	"turn-chat/transport"
)

const eventBufferSize = 16

// Engine bootstraps one session over a TCP listener: accept both
// participants, run the workers under supervision, wait for the session
// to end, and emit the final transcript.
type Engine struct {
	log               *slog.Logger
	starter           domain.Participant
	moderator         *moderation.Moderator
	monitor           *observability.Monitor
	sinks             []contract.EventSink
	telemetryInterval time.Duration
	out               io.Writer
}

func NewEngine(
	log *slog.Logger,
	starter domain.Participant,
	moderator *moderation.Moderator,
	monitor *observability.Monitor,
	telemetryInterval time.Duration,
	out io.Writer,
	sinks ...contract.EventSink,
) *Engine {
	return &Engine{
		log:               log,
		starter:           starter,
		moderator:         moderator,
		monitor:           monitor,
		sinks:             sinks,
		telemetryInterval: telemetryInterval,
		out:               out,
	}
}

// Serve runs exactly one session on the listener and returns once it is
// closed. The accept phase blocks until both participants connect; that
// is the only phase without a cancellation path besides ctx.
func (e *Engine) Serve(ctx context.Context, ln net.Listener) error {
	peers, err := transport.AcceptPair(ln, e.log)
	if err != nil {
		return err
	}

	record := transcript.New()
	turns := NewCoordinator(e.log)
	events := make(chan event.DomainEvent, eventBufferSize)

	session := NewSession(e.log, peers, record, turns, e.monitor, e.moderator, events)
	if err := session.Begin(e.starter); err != nil {
		for _, peer := range peers {
			_ = peer.Close()
		}
		return fmt.Errorf("role negotiation failed: %w", err)
	}

	supervisor := workers.NewSupervisor(e.log)
	for dept, peer := range peers {
		supervisor.Add(
			workers.NewReceiver(peer, session, e.log),
			workers.NewTurnNotifier(dept, peer, turns, e.log),
		)
	}
	supervisor.Add(workers.NewEventFanout(e.log, events, e.sinks...))
	if e.telemetryInterval > 0 {
		supervisor.Add(workers.NewTelemetry(e.log, e.monitor, e.telemetryInterval))
	}

	supervised := make(chan struct{})
	go func() {
		defer close(supervised)
		supervisor.Run(ctx)
	}()

	select {
	case <-ctx.Done():
	case <-session.Ended():
	}

	session.Shutdown()
	supervisor.Stop()
	<-supervised

	e.emitTranscript(record)
	e.monitor.LogReport()
	return nil
}

// emitTranscript prints the final ordered record, both as the classic
// "#NNN [DEPT] text" dump and as an operator table.
func (e *Engine) emitTranscript(record *transcript.Transcript) {
	if e.out == nil {
		return
	}
	fmt.Fprintln(e.out, "\nConversa completa (ordenada):")
	record.RenderPlain(e.out)
	fmt.Fprintln(e.out)
	record.RenderTable(e.out)
}
