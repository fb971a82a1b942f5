package runtime

import (
	"context"
	"log/slog"
	"sync"

	"turn-chat/domain"
)

// Coordinator arbitrates which participant may send next.
//
// It is the channel-per-identity variant of a condition-wait: each
// identity has a single-slot grant channel, so every grant unblocks at
// most one waiter. The holder is tracked under a mutex for out-of-turn
// rejection checks; closing wakes every waiter exactly once through the
// shared done channel.
type Coordinator struct {
	mu        sync.Mutex
	holder    domain.Participant
	hasHolder bool

	grants    map[domain.Participant]chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	log       *slog.Logger
}

func NewCoordinator(log *slog.Logger) *Coordinator {
	return &Coordinator{
		grants: map[domain.Participant]chan struct{}{
			domain.DeptRH: make(chan struct{}, 1),
			domain.DeptTI: make(chan struct{}, 1),
		},
		done: make(chan struct{}),
		log:  log,
	}
}

// Grant hands the turn to p and wakes at most one waiter for p.
// A stale, unconsumed grant for the counterpart is withdrawn so that
// only one identity is ever in "my turn" state.
func (c *Coordinator) Grant(p domain.Participant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosed() {
		return
	}

	c.holder = p
	c.hasHolder = true

	select {
	case <-c.grants[p.Other()]:
	default:
	}
	select {
	case c.grants[p] <- struct{}{}:
	default:
		// A grant for p is already pending; one token is enough.
	}
}

// Advance atomically switches the turn to the counterpart of from.
func (c *Coordinator) Advance(from domain.Participant) {
	c.Grant(from.Other())
}

// Return hands the turn back to p after a delivery failure, so the
// sender is not stuck waiting on an absent recipient.
func (c *Coordinator) Return(p domain.Participant) {
	c.Grant(p)
}

// Holder reports the current turn-holder; ok is false once the
// coordinator is closed or before the first grant.
func (c *Coordinator) Holder() (domain.Participant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosed() || !c.hasHolder {
		return "", false
	}
	return c.holder, true
}

// WaitForTurn parks the caller until p holds the turn or the coordinator
// closes. The bool result distinguishes "proceed" (true) from "session
// closed" (false); it never returns true on the wrong turn.
func (c *Coordinator) WaitForTurn(ctx context.Context, p domain.Participant) (bool, error) {
	select {
	case <-c.done:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-c.grants[p]:
		select {
		case <-c.done:
			return false, nil
		default:
		}
		return true, nil
	}
}

// Close sets the terminal marker and wakes all waiters. Idempotent.
func (c *Coordinator) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.hasHolder = false
		close(c.done)
		c.mu.Unlock()
		c.log.Debug("Turn coordinator closed")
	})
}

// isClosed must be called with mu held.
func (c *Coordinator) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
