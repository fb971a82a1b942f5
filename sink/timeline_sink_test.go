package sink

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"turn-chat/domain"
	"turn-chat/domain/event"
)

func TestTimeline_ProjectsDeliveredMessagesInOrder(t *testing.T) {
	tl := NewTimeline()
	ctx := context.Background()

	require.NoError(t, tl.Consume(ctx, event.MessageDelivered{
		ID: uuid.New(), Seq: 1, Sender: domain.DeptRH, Text: "Olá TI", At: time.Now(),
	}))
	require.NoError(t, tl.Consume(ctx, event.MessageDelivered{
		ID: uuid.New(), Seq: 2, Sender: domain.DeptTI, Text: "Oi RH", At: time.Now(),
	}))

	msgs := tl.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, uint64(1), msgs[0].Seq)
	require.Equal(t, "Oi RH", msgs[1].Text)
}

func TestTimeline_IgnoresOtherEvents(t *testing.T) {
	tl := NewTimeline()

	require.NoError(t, tl.Consume(context.Background(), event.ParticipantQuit{
		Who: domain.DeptRH, At: time.Now(),
	}))
	require.Empty(t, tl.Messages())
}
