package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"turn-chat/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCoordinator_GrantSetsHolder(t *testing.T) {
	c := NewCoordinator(testLogger())

	_, ok := c.Holder()
	require.False(t, ok, "no holder before the first grant")

	c.Grant(domain.DeptRH)
	holder, ok := c.Holder()
	require.True(t, ok)
	require.Equal(t, domain.DeptRH, holder)

	c.Advance(domain.DeptRH)
	holder, ok = c.Holder()
	require.True(t, ok)
	require.Equal(t, domain.DeptTI, holder)
}

func TestCoordinator_WaitForTurnProceedsOnlyForHolder(t *testing.T) {
	c := NewCoordinator(testLogger())
	ctx := context.Background()

	c.Grant(domain.DeptRH)

	proceed, err := c.WaitForTurn(ctx, domain.DeptRH)
	require.NoError(t, err)
	require.True(t, proceed)

	// The counterpart must stay parked.
	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = c.WaitForTurn(waitCtx, domain.DeptTI)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCoordinator_ReturnWakesSameIdentity(t *testing.T) {
	c := NewCoordinator(testLogger())
	ctx := context.Background()

	c.Grant(domain.DeptRH)
	proceed, err := c.WaitForTurn(ctx, domain.DeptRH)
	require.NoError(t, err)
	require.True(t, proceed)

	// Delivery failure: the sender keeps the turn.
	c.Return(domain.DeptRH)
	proceed, err = c.WaitForTurn(ctx, domain.DeptRH)
	require.NoError(t, err)
	require.True(t, proceed)

	holder, ok := c.Holder()
	require.True(t, ok)
	require.Equal(t, domain.DeptRH, holder)
}

func TestCoordinator_AdvanceWithdrawsStaleGrant(t *testing.T) {
	c := NewCoordinator(testLogger())

	// RH never consumed its grant before the turn moved on.
	c.Grant(domain.DeptRH)
	c.Advance(domain.DeptRH)

	waitCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.WaitForTurn(waitCtx, domain.DeptRH)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	proceed, err := c.WaitForTurn(context.Background(), domain.DeptTI)
	require.NoError(t, err)
	require.True(t, proceed)
}

func TestCoordinator_CloseWakesAllWaiters(t *testing.T) {
	c := NewCoordinator(testLogger())
	ctx := context.Background()

	results := make(chan bool, 2)
	for _, dept := range []domain.Participant{domain.DeptRH, domain.DeptTI} {
		go func(d domain.Participant) {
			proceed, err := c.WaitForTurn(ctx, d)
			require.NoError(t, err)
			results <- proceed
		}(dept)
	}

	c.Close()

	for i := 0; i < 2; i++ {
		select {
		case proceed := <-results:
			require.False(t, proceed, "closed coordinator must report closure, not a turn")
		case <-time.After(time.Second):
			t.Fatal("waiter still parked after Close")
		}
	}

	_, ok := c.Holder()
	require.False(t, ok)

	// Idempotent close, and grants after close are ignored.
	c.Close()
	c.Grant(domain.DeptRH)
	proceed, err := c.WaitForTurn(ctx, domain.DeptRH)
	require.NoError(t, err)
	require.False(t, proceed)
}
