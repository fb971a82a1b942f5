package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type countingWorker struct {
	runs    atomic.Int32
	outcome func(run int32) error
}

func (w *countingWorker) Run(ctx context.Context) error {
	return w.outcome(w.runs.Add(1))
}

func TestSupervisor_RestartsPanickingWorker(t *testing.T) {
	worker := &countingWorker{outcome: func(run int32) error {
		if run == 1 {
			panic("boom")
		}
		return nil
	}}

	s := NewSupervisor(testLogger())
	s.Add(worker)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not finish")
	}
	require.Equal(t, int32(2), worker.runs.Load(), "panicked worker must be restarted once")
}

func TestSupervisor_DoesNotRestartFinishedWorker(t *testing.T) {
	worker := &countingWorker{outcome: func(int32) error { return nil }}

	s := NewSupervisor(testLogger())
	s.Add(worker)
	s.Run(context.Background())

	require.Equal(t, int32(1), worker.runs.Load())
}

func TestSupervisor_StopCancelsWorkers(t *testing.T) {
	blocking := &countingWorker{outcome: func(int32) error {
		return fmt.Errorf("always failing")
	}}

	s := NewSupervisor(testLogger())
	s.Add(blocking)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(context.Background())
	}()

	// Give the worker time to enter its crash/restart cycle.
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not terminate the supervisor")
	}
}
