package sink

import (
	"context"
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"turn-chat/domain/event"
)

// Analysis detects the language of delivered messages. Pure side
// effect: its outcome never flows back into the turn machine.
type Analysis struct {
	log *slog.Logger
}

func NewAnalysis(log *slog.Logger) *Analysis {
	return &Analysis{log: log}
}

func (a *Analysis) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.MessageDelivered)
	if !ok {
		return nil
	}

	info := whatlanggo.Detect(evt.Text)
	a.log.Debug("Message analyzed",
		"seq", evt.Seq,
		"sender", evt.Sender,
		"lang", info.Lang.String(),
		"confidence", info.Confidence,
	)
	return nil
}
