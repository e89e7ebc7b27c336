package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/constants"
	mockusecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSchedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		Enabled:        true,
		OrganizationID: "org-1",
		Timezone:       "Europe/Berlin",
		DailyCron:      "0 0 4 * * *",
		ReminderCron:   "0 0 */2 * * *",
		OverdueCron:    "0 0 2 * * *",
		RescheduleCron: "0 0 3 * * *",
		SnapshotCron:   "0 0 6 * * *",
		Workers:        2,
		JobTimeout:     time.Minute,
	}
}

func newTestScheduler(t *testing.T, cfg config.SchedulerConfig) (*cronScheduler, *mockusecase.MockSchedulerUsecase) {
	schedulerUC := mockusecase.NewMockSchedulerUsecase(t)
	s, err := newCronScheduler(cfg, schedulerUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return s, schedulerUC
}

func TestNewCronScheduler_InvalidTimezone(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.Timezone = "Mars/Olympus"

	_, err := newCronScheduler(cfg, mockusecase.NewMockSchedulerUsecase(t), slog.Default())

	assert.Error(t, err)
}

func TestCronScheduler_RunnerCarriesJobContext(t *testing.T) {
	s, schedulerUC := newTestScheduler(t, testSchedulerConfig())

	schedulerUC.EXPECT().
		RunJob(mock.Anything, constants.JobReminders, "org-1").
		Run(func(ctx context.Context, _, _ string) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		}).
		Return(&usecase.RunSummary{Job: constants.JobReminders}, nil).Once()

	s.runner(constants.JobReminders)()
}

func TestCronScheduler_RunnerSwallowsErrors(t *testing.T) {
	s, schedulerUC := newTestScheduler(t, testSchedulerConfig())

	schedulerUC.EXPECT().
		RunJob(mock.Anything, constants.JobDailySnapshot, "org-1").
		Return(nil, errors.New("database is down")).Once()

	assert.NotPanics(t, s.runner(constants.JobDailySnapshot))
}

func TestCronScheduler_ServeRegistersEveryJob(t *testing.T) {
	s, _ := newTestScheduler(t, testSchedulerConfig())

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		entries := s.cron.Entries()
		if len(entries) != 5 {
			return false
		}
		for _, entry := range entries {
			if entry.Next.IsZero() {
				return false
			}
		}

		return true
	}, time.Second, 10*time.Millisecond)

	for _, entry := range s.cron.Entries() {
		assert.Equal(t, "Europe/Berlin", entry.Next.Location().String())
	}

	require.NoError(t, s.stop(context.Background()))
	assert.NoError(t, <-served)
}

func TestCronScheduler_ServeRejectsBadSpec(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.DailyCron = "every morning"
	s, _ := newTestScheduler(t, cfg)

	err := s.Serve(context.Background())

	assert.ErrorContains(t, err, constants.JobDailyNotifications)
}

func TestCronScheduler_Disabled(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.Enabled = false
	s, _ := newTestScheduler(t, cfg)

	assert.NoError(t, s.Serve(context.Background()))
	assert.Empty(t, s.cron.Entries())
	assert.NoError(t, s.stop(context.Background()))
}
