package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"turn-chat/domain"
	"turn-chat/domain/event"
)

func TestAnalysis_ConsumeNeverFails(t *testing.T) {
	a := NewAnalysis(slog.New(slog.DiscardHandler))
	ctx := context.Background()

	require.NoError(t, a.Consume(ctx, event.MessageDelivered{
		Seq: 1, Sender: domain.DeptRH, Text: "Bom dia, tudo certo por aí?", At: time.Now(),
	}))
	require.NoError(t, a.Consume(ctx, event.SessionClosed{Messages: 1, At: time.Now()}))
}
