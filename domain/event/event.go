// Package event defines the domain events fanned out to in-process sinks.
// Fan-out is best effort: events feed projections and observability,
// never the core turn logic.
package event

import (
	"time"

	"github.com/google/uuid"

	"turn-chat/domain"
)

type DomainEvent interface {
	OccurredAt() time.Time
}

// MessageDelivered is published after a message was appended and
// successfully forwarded to the counterpart.
type MessageDelivered struct {
	ID     uuid.UUID
	Seq    uint64
	Sender domain.Participant
	Text   string
	At     time.Time
}

func (e MessageDelivered) OccurredAt() time.Time { return e.At }

// DeliveryFailed is published when the recipient was offline at delivery
// time. The message is still part of the transcript.
type DeliveryFailed struct {
	ID        uuid.UUID
	Seq       uint64
	Sender    domain.Participant
	Recipient domain.Participant
	At        time.Time
}

func (e DeliveryFailed) OccurredAt() time.Time { return e.At }

// ParticipantQuit is published when a participant sends QUIT or disconnects.
type ParticipantQuit struct {
	Who domain.Participant
	At  time.Time
}

func (e ParticipantQuit) OccurredAt() time.Time { return e.At }

// SessionClosed is published exactly once when the session reaches CLOSED.
type SessionClosed struct {
	Messages uint64
	At       time.Time
}

func (e SessionClosed) OccurredAt() time.Time { return e.At }
