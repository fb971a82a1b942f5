package workers

import (
	"context"
	"log/slog"

	"turn-chat/contract"
	"turn-chat/domain/event"
)

// EventFanout broadcasts domain events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. It is intended for projections and
// observability side effects, not for core turn logic.
type EventFanout struct {
	log    *slog.Logger
	events <-chan event.DomainEvent
	sinks  []contract.EventSink
}

func NewEventFanout(log *slog.Logger, events <-chan event.DomainEvent, sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{log: log, events: events, sinks: sinks}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			w.log.Debug("Context done, stopping event fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.broadcast(ctx, evt)
		}
	}
}

func (w *EventFanout) broadcast(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Warn("Sink rejected event", "error", err)
		}
	}
}

// drain flushes events already buffered at cancellation time, so the
// final SessionClosed and late deliveries still reach the sinks.
func (w *EventFanout) drain() {
	for {
		select {
		case evt, ok := <-w.events:
			if !ok {
				return
			}
			w.broadcast(context.Background(), evt)
		default:
			return
		}
	}
}
