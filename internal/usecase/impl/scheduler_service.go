package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// taskResult is how one task counts towards a RunSummary.
type taskResult int

const (
	resultSent taskResult = iota
	resultFailed
	resultSkipped
)

// reminderStatuses are the task states that still get reminders.
var reminderStatuses = []entity.MaintenanceStatus{entity.StatusActive, entity.StatusPending, entity.StatusOverdue}

type schedulerService struct {
	maintenance      usecase.MaintenanceUsecase
	taskRepo         repository.MaintenanceTaskRepository
	notifier         usecase.InAppNotifier
	dispatcher       usecase.NotificationDispatcher
	archiver         service.SnapshotArchiver
	workers          int
	maxReminders     int
	location         *time.Location
	now              func() time.Time
	logger           *slog.Logger
}

// SchedulerServiceParams holds dependencies for the scheduler jobs, injected by Fx.
type SchedulerServiceParams struct {
	fx.In

	Maintenance      usecase.MaintenanceUsecase
	TaskRepo         repository.MaintenanceTaskRepository
	Notifier         usecase.InAppNotifier
	Dispatcher       usecase.NotificationDispatcher
	Archiver         service.SnapshotArchiver
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSchedulerService creates the scheduler job runner.
func NewSchedulerService(params SchedulerServiceParams) usecase.SchedulerUsecase {
	workers := params.Config.Scheduler.Workers
	if workers < 1 {
		workers = 1
	}

	return &schedulerService{
		maintenance:      params.Maintenance,
		taskRepo:         params.TaskRepo,
		notifier:         params.Notifier,
		dispatcher:       params.Dispatcher,
		archiver:         params.Archiver,
		workers:          workers,
		maxReminders:     params.Config.Notification.MaxRemindersPerDay,
		location:         schedulerLocation(params.Config),
		now:              time.Now,
		logger:           params.Logger.With(slog.String("component", "scheduler")),
	}
}

func (s *schedulerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RunJob runs a job by name.
func (s *schedulerService) RunJob(ctx context.Context, job, organizationID string) (*usecase.RunSummary, error) {
	switch job {
	case constants.JobDailyNotifications:
		return s.RunDailyNotifications(ctx, organizationID)
	case constants.JobReminders:
		return s.RunReminderSweep(ctx, organizationID)
	case constants.JobOverdueSweep:
		return s.RunOverdueSweep(ctx)
	case constants.JobAutoReschedule:
		return s.RunAutoReschedule(ctx, organizationID)
	case constants.JobDailySnapshot:
		return s.RunDailySnapshot(ctx, organizationID)
	default:
		return nil, domainerrors.ErrUnknownSchedulerJob.WithDetails(job)
	}
}

// RunDailyNotifications notifies the assignee of every task due today or overdue.
// Tasks without an assignee are skipped and counted neither sent nor failed.
func (s *schedulerService) RunDailyNotifications(ctx context.Context, organizationID string) (*usecase.RunSummary, error) {
	summary := s.startSummary(constants.JobDailyNotifications, organizationID)
	today := entity.CalendarDay(summary.StartedAt.In(s.location))

	tasks, err := s.taskRepo.FindDueTasks(ctx, repository.DueTaskFilter{
		OrganizationID: organizationID,
		DueOnOrBefore:  today,
		Statuses:       []entity.MaintenanceStatus{entity.StatusActive, entity.StatusOverdue},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load due tasks")
	}

	s.fanOut(ctx, summary, tasks, func(ctx context.Context, due *entity.DueTask) taskResult {
		notice, ok := s.notice(ctx, due)
		if !ok {
			return resultSkipped
		}

		s.notifyInApp(ctx, due, &usecase.Notice{
			UserID:         notice.AssigneeID,
			OrganizationID: due.Task.OrganizationID,
			Title:          "Maintenance due: " + due.Task.TaskName,
			Message:        fmt.Sprintf("%s on %s is due %s.", due.Task.TaskName, notice.DeviceName, due.Task.NextMaintenance.Format("2006-01-02")),
			Category:       entity.CategoryMaintenanceReminder,
			Metadata:       taskMetadata(due, 0),
		})

		return dispatchResult(s.dispatcher.Send(ctx, notice, 0))
	})

	return s.finish(ctx, summary), nil
}

// RunReminderSweep sends the next reminder for every open task due today or earlier,
// up to maxReminders per task and day. Ordinals come from the task's reminder ledger,
// so they count dispatches whether or not the in-app copy was shown.
func (s *schedulerService) RunReminderSweep(ctx context.Context, organizationID string) (*usecase.RunSummary, error) {
	summary := s.startSummary(constants.JobReminders, organizationID)
	today := entity.CalendarDay(summary.StartedAt.In(s.location))

	tasks, err := s.taskRepo.FindDueTasks(ctx, repository.DueTaskFilter{
		OrganizationID: organizationID,
		DueOnOrBefore:  today,
		Statuses:       reminderStatuses,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tasks needing reminders")
	}

	s.fanOut(ctx, summary, tasks, func(ctx context.Context, due *entity.DueTask) taskResult {
		notice, ok := s.notice(ctx, due)
		if !ok {
			return resultSkipped
		}

		ordinal, err := s.taskRepo.ClaimReminder(ctx, due.Task.ID, today, s.maxReminders)
		if err != nil {
			s.log(ctx).Error("[Scheduler] Failed to claim reminder", slog.String("task_id", due.Task.ID.String()), slog.Any("error", err))

			return resultFailed
		}
		if ordinal == 0 {
			return resultSkipped
		}

		s.notifyInApp(ctx, due, &usecase.Notice{
			UserID:         notice.AssigneeID,
			OrganizationID: due.Task.OrganizationID,
			Title:          fmt.Sprintf("Maintenance reminder #%d: %s", ordinal, due.Task.TaskName),
			Message:        fmt.Sprintf("%s on %s was due %s and is still open.", due.Task.TaskName, notice.DeviceName, due.Task.NextMaintenance.Format("2006-01-02")),
			Category:       entity.CategoryMaintenanceReminder,
			Metadata:       taskMetadata(due, ordinal),
		})

		return dispatchResult(s.dispatcher.Send(ctx, notice, ordinal))
	})

	return s.finish(ctx, summary), nil
}

// RunOverdueSweep flips ACTIVE tasks due before today to OVERDUE.
func (s *schedulerService) RunOverdueSweep(ctx context.Context) (*usecase.RunSummary, error) {
	summary := s.startSummary(constants.JobOverdueSweep, "")

	changed, err := s.maintenance.SweepOverdue(ctx)
	if err != nil {
		return nil, err
	}
	summary.Total = int(changed)

	return s.finish(ctx, summary), nil
}

// RunAutoReschedule moves OVERDUE tasks to their next occurrence.
func (s *schedulerService) RunAutoReschedule(ctx context.Context, organizationID string) (*usecase.RunSummary, error) {
	summary := s.startSummary(constants.JobAutoReschedule, organizationID)

	count, err := s.maintenance.RescheduleOverdue(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	summary.Total = count

	return s.finish(ctx, summary), nil
}

// RunDailySnapshot writes DAILY_SNAPSHOT history rows and archives them as one object.
// An archive failure is counted as failed; the rows stay written.
func (s *schedulerService) RunDailySnapshot(ctx context.Context, organizationID string) (*usecase.RunSummary, error) {
	summary := s.startSummary(constants.JobDailySnapshot, organizationID)

	records, err := s.maintenance.SnapshotActiveTasks(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	summary.Total = len(records)

	if len(records) > 0 && s.archiver != nil {
		scope := organizationID
		if scope == "" {
			scope = "all"
		}
		key := scope + "/" + summary.StartedAt.In(s.location).Format("2006-01-02")

		if err := s.archiver.Archive(ctx, key, records); err != nil {
			s.log(ctx).Error("[Scheduler] Failed to archive snapshots", slog.String("key", key), slog.Any("error", err))
			summary.Failed = len(records)
		} else {
			summary.Sent = len(records)
		}
	}

	return s.finish(ctx, summary), nil
}

// fanOut runs handle for every task on at most s.workers goroutines.
// A panicking task is recovered and counted as failed.
func (s *schedulerService) fanOut(ctx context.Context, summary *usecase.RunSummary, tasks []*entity.DueTask, handle func(context.Context, *entity.DueTask) taskResult) {
	var sent, failed, skipped atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.workers)

	for _, due := range tasks {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					failed.Add(1)
					s.log(ctx).Error("[Scheduler] Task processing panicked",
						slog.String("task_id", due.Task.ID.String()),
						slog.Any("panic", r),
					)
				}
			}()

			switch handle(ctx, due) {
			case resultSent:
				sent.Add(1)
			case resultFailed:
				failed.Add(1)
			default:
				skipped.Add(1)
			}

			return nil
		})
	}
	_ = g.Wait()

	summary.Total = len(tasks)
	summary.Sent = int(sent.Load())
	summary.Failed = int(failed.Load())
	summary.Skipped = int(skipped.Load())
}

// notice requires an assignee with a resolvable display name.
func (s *schedulerService) notice(ctx context.Context, due *entity.DueTask) (*entity.TaskNotice, bool) {
	if due.Assignee == nil || due.Assignee.DisplayName() == "" {
		s.log(ctx).Warn("[Scheduler] Skipping task without assignee",
			slog.String("task_id", due.Task.ID.String()),
			slog.String("device", due.DeviceName),
		)

		return nil, false
	}

	return &entity.TaskNotice{
		Task:         due.Task,
		DeviceName:   due.DeviceName,
		AssigneeID:   due.Assignee.ID,
		AssigneeName: due.Assignee.DisplayName(),
	}, true
}

// notifyInApp records the in-app notification; its failure never blocks the dispatch.
func (s *schedulerService) notifyInApp(ctx context.Context, due *entity.DueTask, notice *usecase.Notice) {
	created, err := s.notifier.Notify(ctx, notice)
	switch {
	case err != nil:
		s.log(ctx).Error("[Scheduler] Failed to create in-app notification",
			slog.String("task_id", due.Task.ID.String()),
			slog.Any("error", err),
		)
	case !created:
		s.log(ctx).Info("[Scheduler] In-app notification suppressed by preferences",
			slog.String("task_id", due.Task.ID.String()),
		)
	}
}

func taskMetadata(due *entity.DueTask, reminder int) entity.NotificationMetadata {
	taskID := due.Task.ID
	deviceID := due.Task.DeviceID

	return entity.NotificationMetadata{
		TaskID:         &taskID,
		DeviceID:       &deviceID,
		DeviceName:     due.DeviceName,
		ReminderNumber: reminder,
	}
}

func dispatchResult(outcome entity.DispatchOutcome) taskResult {
	if outcome.Delivered {
		return resultSent
	}

	return resultFailed
}

func (s *schedulerService) startSummary(job, organizationID string) *usecase.RunSummary {
	return &usecase.RunSummary{
		Job:            job,
		OrganizationID: organizationID,
		StartedAt:      s.now(),
	}
}

func (s *schedulerService) finish(ctx context.Context, summary *usecase.RunSummary) *usecase.RunSummary {
	summary.Duration = s.now().Sub(summary.StartedAt)

	s.log(ctx).Info("[Scheduler] Job finished",
		slog.String("job", summary.Job),
		slog.String("organization_id", summary.OrganizationID),
		slog.Int("total", summary.Total),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
		slog.Duration("duration", summary.Duration),
	)

	return summary
}
