//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"bot-lab/domain"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

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

// Sender delivers text to a channel address, best effort.
type Sender interface {
	SendTo(ctx context.Context, to domain.Address, text string) error
}

// Transport is the messaging channel the bot is plugged into.
type Transport interface {
	Sender
	Reply(ctx context.Context, msg domain.InboundMessage, text string) error
	Messages() <-chan domain.InboundMessage
	Ready() bool
}

type ReadinessProbe interface {
	Ready() bool
}

// CompletionRequest is a single system + user prompt exchange.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Completer is the raw text-generation service. It may fail in any way.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Generator never fails: errors are turned into fallback texts.
type Generator interface {
	Generate(ctx context.Context, prompt, role string) string
	Translate(ctx context.Context, text, language string) string
	Configured() bool
}

type TaskQueue interface {
	Enqueue(reply domain.Reply) bool
}

type MessageHandler interface {
	Dispatch(ctx context.Context, msg domain.InboundMessage) (domain.Reply, bool)
}

type ISessionRegistry interface {
	Create(id domain.SessionID, displayName string, origin domain.Address, at time.Time) (domain.PairedSession, error)
	Restore(ctx context.Context, id domain.SessionID, target domain.Address) bool
	Lookup(id domain.SessionID) (domain.PairedSession, bool)
	Enumerate() []domain.PairedSession
	Size() int
}

type IEngagementTracker interface {
	MarkWelcomed(address domain.Address) bool
	Has(address domain.Address) bool
	Size() int
}

type IFeatureState interface {
	Enabled() bool
	Toggle(requester domain.Address) (bool, error)
	Admin() domain.Address
	IsAdmin(address domain.Address) bool
}

type ProcessStats interface {
	Uptime() time.Duration
	MemoryBytes() (uint64, error)
}
