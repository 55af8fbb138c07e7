package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Salsapil/alx-backend-user-data/internal/config"
	"github.com/Salsapil/alx-backend-user-data/internal/events"
	"github.com/Salsapil/alx-backend-user-data/internal/service"
)

func TestStartNotificationWorker_RegistersHandlers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher(nil)

	notifications := service.NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{})
	StartNotificationWorker(notifications)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:   events.EventPasswordUpdated,
		UserID: "u-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("PasswordUpdated").Len())
}

func TestStartNotificationWorker_NilService(t *testing.T) {
	assert.NotPanics(t, func() {
		StartNotificationWorker(nil)
	})
}
