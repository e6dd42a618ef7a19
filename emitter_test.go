package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/connector/types"
)

func TestEventFeed(t *testing.T) {
	t.Parallel()

	var feed EventFeed

	ch1 := make(chan types.Event, 2)
	ch2 := make(chan types.Event, 2)
	sub1 := feed.Subscribe(ch1)
	sub2 := feed.Subscribe(ch2)
	defer sub2.Unsubscribe()

	feed.Emit(types.Event{Name: types.EventMessage, Message: types.MessageConnecting})
	sub1.Unsubscribe()
	feed.Emit(types.Event{Name: types.EventDisconnect})

	require.Len(t, ch1, 1)
	assert.Equal(t, types.EventMessage, (<-ch1).Name)

	require.Len(t, ch2, 2)
	assert.Equal(t, types.EventMessage, (<-ch2).Name)
	assert.Equal(t, types.EventDisconnect, (<-ch2).Name)
}

func TestEmitterFunc(t *testing.T) {
	t.Parallel()

	var got []types.Event
	var e Emitter = EmitterFunc(func(ev types.Event) { got = append(got, ev) })

	e.Emit(types.Event{Name: types.EventConnect})
	assert.Equal(t, []types.Event{{Name: types.EventConnect}}, got)
}
