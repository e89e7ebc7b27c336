// Package scheduler is the cron delivery that fires the maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"upkeep/config"
	"upkeep/internal/delivery"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/lifecycle"
	"upkeep/internal/usecase"
	"upkeep/internal/util"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the cron scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	SchedulerUC usecase.SchedulerUsecase
}

type jobSpec struct {
	name string
	spec string
}

type cronScheduler struct {
	cfg         config.SchedulerConfig
	cron        *cron.Cron
	schedulerUC usecase.SchedulerUsecase
	logger      *slog.Logger

	// baseCtx is cancelled when running jobs outlive the shutdown grace period
	baseCtx    context.Context
	cancelJobs context.CancelFunc
	done       chan struct{}
	stopOnce   sync.Once
}

// NewScheduler builds the cron delivery. Jobs are registered in Serve.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s, err := newCronScheduler(params.Cfg.Scheduler, params.SchedulerUC, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newCronScheduler(cfg config.SchedulerConfig, schedulerUC usecase.SchedulerUsecase, logger *slog.Logger) (*cronScheduler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	cronLog := cronLogger{logger: logger}
	baseCtx, cancel := context.WithCancel(context.Background())

	return &cronScheduler{
		cfg: cfg,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		schedulerUC: schedulerUC,
		logger:      logger,
		baseCtx:     baseCtx,
		cancelJobs:  cancel,
		done:        make(chan struct{}),
	}, nil
}

func (s *cronScheduler) jobs() []jobSpec {
	// Overdue flipping runs first so the daily notices see fresh statuses.
	return []jobSpec{
		{name: constants.JobOverdueSweep, spec: s.cfg.OverdueCron},
		{name: constants.JobAutoReschedule, spec: s.cfg.RescheduleCron},
		{name: constants.JobDailyNotifications, spec: s.cfg.DailyCron},
		{name: constants.JobReminders, spec: s.cfg.ReminderCron},
		{name: constants.JobDailySnapshot, spec: s.cfg.SnapshotCron},
	}
}

// Serve registers the jobs, starts the cron and blocks until stop.
func (s *cronScheduler) Serve(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("[Scheduler] Disabled by configuration, no jobs registered")

		return nil
	}

	for _, job := range s.jobs() {
		if job.spec == "" {
			continue
		}

		if _, err := s.cron.AddFunc(job.spec, s.runner(job.name)); err != nil {
			return errors.Wrapf(err, "invalid cron spec %q for job %s", job.spec, job.name)
		}

		s.logger.Info("[Scheduler] Job registered", slog.String("job", job.name), slog.String("spec", job.spec))
	}

	s.cron.Start()
	s.logger.Info("[Scheduler] Started",
		slog.String("timezone", s.cfg.Timezone),
		slog.String("organization_id", s.cfg.OrganizationID),
		slog.Int("jobs", len(s.cron.Entries())),
	)

	<-s.done

	return nil
}

// runner wraps one firing in a bounded context carrying its own request id.
func (s *cronScheduler) runner(job string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(s.baseCtx, s.cfg.JobTimeout)
		defer cancel()

		ctx = deliverycontext.WithRequestScope(ctx, s.logger, "", slog.String("job", job))
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

		summary, err := s.schedulerUC.RunJob(ctx, job, s.cfg.OrganizationID)
		if err != nil {
			logger.Error("[Scheduler] Job failed", slog.Any("error", err))

			return
		}

		logger.Debug("[Scheduler] Job run complete",
			slog.Int("total", summary.Total),
			slog.String("duration", util.FormatDuration(summary.Duration)),
		)
	}
}

// stop waits for running jobs up to lifecycle.DefaultTimeout, then cancels them.
func (s *cronScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		defer close(s.done)

		s.logger.Info("[Scheduler] Stopping")
		running := s.cron.Stop()

		waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		select {
		case <-running.Done():
		case <-waitCtx.Done():
			s.logger.Warn("[Scheduler] Running jobs did not finish in time, cancelling")
		}

		s.cancelJobs()
	})

	return nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Scheduler] cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Scheduler] cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
