//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"turn-chat/domain"
	"turn-chat/domain/event"
)

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need
// for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// ITranscript is the append-only sequence-numbered record of a session.
// MarkUndelivered is the single post-append correction: it resolves the
// delivery flag when a forward fails after the entry was stored.
type ITranscript interface {
	Append(sender domain.Participant, text string, delivered bool) domain.Message
	MarkUndelivered(seq uint64)
	Snapshot() []domain.Message
	Len() int
}

// ITurnCoordinator arbitrates which participant may send next.
// WaitForTurn parks the caller until its identity holds the turn or the
// coordinator is closed; the bool result distinguishes the two.
type ITurnCoordinator interface {
	WaitForTurn(ctx context.Context, p domain.Participant) (bool, error)
	Grant(p domain.Participant)
	Advance(from domain.Participant)
	Return(p domain.Participant)
	Holder() (domain.Participant, bool)
	Close()
}
