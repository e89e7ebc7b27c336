package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"upkeep/config"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// fixedNow is the clock used by every service test: Friday 2024-03-15 09:00 UTC.
var fixedNow = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.Timezone = "UTC"
	cfg.Scheduler.Workers = 2
	cfg.Conversation.MaxRetries = 3
	cfg.Conversation.RetryDelay = time.Second
	cfg.Notification.MaxRemindersPerDay = 3
	cfg.Notification.DashboardURL = "https://dash.example.com"
	cfg.Notification.Styles = map[string]config.StyleConfig{
		"CRITICAL": {Emoji: "🔴", DisplayName: "Critical", PriorityLevel: 4},
		"HIGH":     {Emoji: "🔴", DisplayName: "High", PriorityLevel: 3},
		"MEDIUM":   {Emoji: "🟡", DisplayName: "Medium", PriorityLevel: 2},
		"LOW":      {Emoji: "🟢", DisplayName: "Low", PriorityLevel: 1},
	}

	return cfg
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// expectTransaction runs every Execute call against repositories handed out by a mock factory.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	taskRepo repository.MaintenanceTaskRepository,
	historyRepo repository.MaintenanceHistoryRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewMaintenanceTaskRepository().Return(taskRepo).Maybe()
	factory.EXPECT().NewMaintenanceHistoryRepository().Return(historyRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
