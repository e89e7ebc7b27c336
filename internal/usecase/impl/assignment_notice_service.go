package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assignmentNoticeService struct {
	taskRepo         repository.MaintenanceTaskRepository
	deviceRepo       repository.DeviceRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	notifier         usecase.InAppNotifier
	dispatcher       usecase.NotificationDispatcher
	logger           *slog.Logger
}

// AssignmentNoticeServiceParams holds dependencies for the assignment notice flow.
type AssignmentNoticeServiceParams struct {
	fx.In

	TaskRepo         repository.MaintenanceTaskRepository
	DeviceRepo       repository.DeviceRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Notifier         usecase.InAppNotifier
	Dispatcher       usecase.NotificationDispatcher
	Logger           *slog.Logger
}

// NewAssignmentNoticeService creates the consumer side of TaskAssignedEvent.
func NewAssignmentNoticeService(params AssignmentNoticeServiceParams) usecase.AssignmentNoticeUsecase {
	return &assignmentNoticeService{
		taskRepo:         params.TaskRepo,
		deviceRepo:       params.DeviceRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		notifier:         params.Notifier,
		dispatcher:       params.Dispatcher,
		logger:           params.Logger,
	}
}

// DeliverAssignment sends the ordinal-0 notice for event. Events that no longer
// match the task's current assignee are dropped with an invalid-request outcome.
func (s *assignmentNoticeService) DeliverAssignment(ctx context.Context, event *service.TaskAssignedEvent) (entity.DispatchOutcome, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("task_id", event.TaskID),
		slog.String("assignee_id", event.AssigneeID),
	)

	taskID, err := uuid.Parse(event.TaskID)
	if err != nil {
		return entity.DispatchOutcome{}, domainerrors.ErrValidationFailed.WithDetails("invalid task_id")
	}
	assigneeID, err := uuid.Parse(event.AssigneeID)
	if err != nil {
		return entity.DispatchOutcome{}, domainerrors.ErrValidationFailed.WithDetails("invalid assignee_id")
	}

	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return entity.DispatchOutcome{}, mapTaskError(err)
	}
	if !task.IsAssigned() || *task.AssignedTo != assigneeID {
		logger.Info("[Worker] Assignment changed since the event was published, dropping")

		return entity.DispatchOutcome{Reason: entity.DispatchInvalidRequest}, nil
	}

	assignee, err := s.userRepo.FindUserByID(ctx, assigneeID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return entity.DispatchOutcome{}, domainerrors.ErrAssigneeNotFound.WithDetails(event.AssigneeID)
	}
	if err != nil {
		return entity.DispatchOutcome{}, errors.Wrap(err, "failed to load assignee")
	}

	deviceName := ""
	device, err := s.deviceRepo.FindDeviceByID(ctx, task.DeviceID)
	switch {
	case err == nil:
		deviceName = device.Name
	case errors.Is(err, repository.ErrDeviceNotFound):
		logger.Warn("[Worker] Device of assigned task not found")
	default:
		return entity.DispatchOutcome{}, errors.Wrap(err, "failed to load device")
	}

	notice := &entity.TaskNotice{
		Task:         task,
		DeviceName:   deviceName,
		AssigneeID:   assigneeID,
		AssigneeName: assignee.DisplayName(),
	}

	// Redeliveries of the same assignment only retry the sink.
	notified, err := s.alreadyNotified(ctx, task, assigneeID)
	if err != nil {
		logger.Warn("[Worker] Failed to check earlier assignment notice", slog.Any("error", err))
	}
	if notified {
		logger.Info("[Worker] Assignment already notified in-app, retrying sink only")

		return s.dispatcher.Send(ctx, notice, 0), nil
	}

	taskRef, deviceRef := task.ID, task.DeviceID
	created, err := s.notifier.Notify(ctx, &usecase.Notice{
		UserID:         assigneeID,
		OrganizationID: task.OrganizationID,
		Title:          "New maintenance task: " + task.TaskName,
		Message:        task.TaskName + " has been assigned to you.",
		Category:       entity.CategoryMaintenanceAssigned,
		Metadata: entity.NotificationMetadata{
			TaskID:     &taskRef,
			DeviceID:   &deviceRef,
			DeviceName: deviceName,
		},
	})
	if err != nil {
		logger.Error("[Worker] Failed to create in-app notification", slog.Any("error", err))
	} else if !created {
		logger.Info("[Worker] In-app notification suppressed by preferences")
	}

	return s.dispatcher.Send(ctx, notice, 0), nil
}

func (s *assignmentNoticeService) alreadyNotified(ctx context.Context, task *entity.MaintenanceTask, assigneeID uuid.UUID) (bool, error) {
	var since time.Time
	if task.AssignedAt != nil {
		since = *task.AssignedAt
	}

	return s.notificationRepo.HasTaskNotification(ctx, task.ID, assigneeID, entity.CategoryMaintenanceAssigned, since)
}
