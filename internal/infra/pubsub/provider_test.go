package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"upkeep/config"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) (PublisherParams, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)

	return PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	params, _ := newPublisherParams(t, nil)

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	assert.NoError(t, publisher.PublishTaskAssigned(context.Background(), &service.TaskAssignedEvent{TaskID: "t"}))
}

func TestNewEventPublisher_Local(t *testing.T) {
	params, lc := newPublisherParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	})

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	lc.RequireStart().RequireStop()
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "maintenance"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, _ := newPublisherParams(t, tt.cfg)

			_, err := NewEventPublisher(params)
			assert.Error(t, err)
		})
	}
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(&service.TaskAssignedEvent{
		EventType:      constants.EventTaskAssigned,
		TaskID:         "task-1",
		OrganizationID: "org-1",
	})

	assert.Equal(t, map[string]string{
		"event_type":      constants.EventTaskAssigned,
		"task_id":         "task-1",
		"organization_id": "org-1",
	}, attrs)
}
