package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Salsapil/alx-backend-user-data/internal/config"
	"github.com/Salsapil/alx-backend-user-data/internal/events"
)

func TestNotificationService_HandlesResetRequested(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher(nil)

	notifications := NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		EmailFrom: "noreply@example.com",
	})
	notifications.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:     "e-1",
		Type:   events.EventPasswordResetRequested,
		UserID: "u-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("PasswordResetRequested").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendEmailNotificationStub").Len())
}

func TestNotificationService_SkipsEmailWithoutSender(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher(nil)

	notifications := NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{})
	notifications.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:   events.EventUserRegistered,
		UserID: "u-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("UserRegistered").Len())
	assert.Equal(t, 0, logs.FilterMessage("sendEmailNotificationStub").Len())
}
