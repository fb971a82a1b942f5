// Package sink contains event consumers fed by the session fanout.
package sink

import (
	"context"
	"sync"

	"turn-chat/domain"
	"turn-chat/domain/event"
)

// Timeline projects delivered messages into a local ordered view.
type Timeline struct {
	mu       sync.Mutex
	messages []domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.MessageDelivered)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, domain.Message{
		ID:        evt.ID,
		Seq:       evt.Seq,
		Sender:    evt.Sender,
		Text:      evt.Text,
		Delivered: true,
		CreatedAt: evt.At,
	})
	return nil
}

// Messages returns an ordered copy of the projected view.
func (t *Timeline) Messages() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}
