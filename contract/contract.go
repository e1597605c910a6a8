//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatroom/domain"
	"chatroom/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
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

// OutboundSink accepts frames for one participant.
// Push must honor ctx and be callable from any goroutine.
// A closed sink returns errors.ErrTransportClosed.
type OutboundSink interface {
	Push(ctx context.Context, frame domain.Frame) error
	Close() error
}

// InboundSource yields the frames a participant sends.
// Next blocks until a frame arrives; it returns io.EOF at the end of the stream
// and errors.ErrTransportClosed when the transport broke.
type InboundSource interface {
	Next(ctx context.Context) (domain.Inbound, error)
}

type ProfanityChecker interface {
	Check(text string) (domain.FilterResult, error)
}

type IChatroom interface {
	Join(handle domain.Handle, role domain.Role, sink OutboundSink) (domain.Participant, error)
	Leave(handle domain.Handle, sink OutboundSink)
	Send(ctx context.Context, sender domain.Handle, text string) (domain.DeliveryReport, error)
	ApplyModeration(ctx context.Context, action domain.ModerationAction, issuer domain.Issuer) error
	Participants() []domain.Participant
}

type IModerationController interface {
	Execute(ctx context.Context, issuer domain.Handle, intent domain.ModerationIntent) error
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
