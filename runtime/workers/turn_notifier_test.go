package workers_test

import (
	"bufio"
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"turn-chat/domain"
	"turn-chat/runtime"
	"turn-chat/runtime/workers"
	"turn-chat/transport"
)

func TestTurnNotifier_PushesTurnFrameOnGrant(t *testing.T) {
	serverEnd, clientEnd := net.Pipe()
	t.Cleanup(func() {
		_ = clientEnd.Close()
	})

	log := slog.New(slog.DiscardHandler)
	peer := transport.NewPeer(domain.DeptRH, serverEnd)
	turns := runtime.NewCoordinator(log)

	lines := make(chan string, 8)
	go func() {
		reader := bufio.NewReader(clientEnd)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			lines <- strings.TrimRight(line, "\n")
		}
	}()

	notifier := workers.NewTurnNotifier(domain.DeptRH, peer, turns, log)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		require.NoError(t, notifier.Run(context.Background()))
	}()

	turns.Grant(domain.DeptRH)
	select {
	case line := <-lines:
		require.Equal(t, domain.FrameTurn, line)
	case <-time.After(time.Second):
		t.Fatal("no TURN frame after grant")
	}

	// Self-return after a delivery failure notifies again.
	turns.Return(domain.DeptRH)
	select {
	case line := <-lines:
		require.Equal(t, domain.FrameTurn, line)
	case <-time.After(time.Second):
		t.Fatal("no TURN frame after self-return")
	}

	// Closing the coordinator releases the parked notifier.
	turns.Close()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("notifier still parked after coordinator close")
	}
}
