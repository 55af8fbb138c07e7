package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(nil)

	var got []Event
	dispatcher.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	dispatcher.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	event := Event{ID: "e-1", Type: EventUserRegistered, UserID: "u-1"}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, got, 2)
	assert.Equal(t, "e-1", got[0].ID)
	assert.Equal(t, "u-1", got[1].UserID)
}

func TestDispatcher_UnsubscribedTypeIsIgnored(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(nil)

	called := false
	dispatcher.Subscribe(EventSessionCreated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventPasswordUpdated})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcher_HandlerErrorIsLoggedAndDoesNotStopOthers(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	dispatcher := NewInMemoryDispatcher(zap.New(core))

	reached := false
	dispatcher.Subscribe(EventSessionDestroyed, func(_ context.Context, _ Event) error {
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventSessionDestroyed, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	event := Event{ID: "e-1", Type: EventSessionDestroyed}
	require.NoError(t, dispatcher.Publish(context.Background(), event))
	assert.True(t, reached)

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "e-1", fields["event_id"])
	assert.Equal(t, string(EventSessionDestroyed), fields["event_type"])
	assert.Equal(t, "handler failure", fields["error"])
}
