package usecase

import (
	"context"

	"upkeep/internal/domain/entity"
)

// NotificationDispatcher delivers messages to the conversation sink with bounded retries.
type NotificationDispatcher interface {
	// Send delivers the notice for ordinal 0 (assignment) or 1..max (overdue reminder #N).
	Send(ctx context.Context, notice *entity.TaskNotice, ordinal int) entity.DispatchOutcome

	// SendCustom delivers a free-form message with the same retry policy.
	SendCustom(ctx context.Context, message string) entity.DispatchOutcome
}
