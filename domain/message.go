// Package domain contains core concepts of the turn-based chat.
// This file defines Message entries and related rules.
// Messages are immutable once appended to the transcript.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one transcript entry. Seq starts at 1 and is contiguous;
// Delivered records whether the counterpart received the forward.
type Message struct {
	ID        uuid.UUID
	Seq       uint64
	Sender    Participant
	Text      string
	Delivered bool
	CreatedAt time.Time
}
