package connector

import (
	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/connector/types"
)

// Emitter receives the notifications a connector sends to the host framework.
type Emitter interface {
	Emit(ev types.Event)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(ev types.Event)

func (f EmitterFunc) Emit(ev types.Event) {
	f(ev)
}

type nopEmitter struct{}

func (nopEmitter) Emit(types.Event) {}

var _ Emitter = (*EventFeed)(nil)

// EventFeed is an Emitter that broadcasts events to channel subscribers.
//
// Emit blocks until every subscriber has received the event, so subscribers should use buffered
// channels or drain them from their own goroutine.
type EventFeed struct {
	feed event.Feed
}

func (f *EventFeed) Emit(ev types.Event) {
	f.feed.Send(ev)
}

// Subscribe delivers every emitted event to ch until the subscription is closed.
func (f *EventFeed) Subscribe(ch chan<- types.Event) event.Subscription {
	return f.feed.Subscribe(ch)
}
