package entity

import "github.com/google/uuid"

// DispatchReason is the terminal reason of one notification dispatch.
type DispatchReason string

const (
	DispatchSuccess        DispatchReason = "success"
	DispatchExhausted      DispatchReason = "exhausted-retries"
	DispatchNonRetryable   DispatchReason = "non-retryable-rejection"
	DispatchInterrupted    DispatchReason = "interrupted"
	DispatchInvalidRequest DispatchReason = "invalid-request"
)

// DispatchOutcome summarizes a finished dispatch. It is never persisted.
type DispatchOutcome struct {
	Delivered bool           `json:"delivered"`
	Attempts  int            `json:"attempts"`
	Reason    DispatchReason `json:"reason"`
}

// Retryable reports whether a later redelivery could still succeed.
func (o DispatchOutcome) Retryable() bool {
	return !o.Delivered && (o.Reason == DispatchExhausted || o.Reason == DispatchInterrupted)
}

// TaskNotice is everything a message template needs about one task.
type TaskNotice struct {
	Task         *MaintenanceTask
	DeviceName   string
	AssigneeID   uuid.UUID
	AssigneeName string
}
