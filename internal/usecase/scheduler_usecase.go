package usecase

import (
	"context"
	"time"
)

// RunSummary reports one scheduler job run.
type RunSummary struct {
	Job            string        `json:"job"`
	OrganizationID string        `json:"organization_id,omitempty"`
	Total          int           `json:"total"`
	Sent           int           `json:"sent"`
	Failed         int           `json:"failed"`
	Skipped        int           `json:"skipped"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration"`
}

// SchedulerUsecase runs the time-triggered maintenance jobs.
// Every job can also be triggered manually with identical behavior.
type SchedulerUsecase interface {
	// RunDailyNotifications notifies the assignee of every task due today or overdue.
	RunDailyNotifications(ctx context.Context, organizationID string) (*RunSummary, error)

	// RunReminderSweep sends the next numbered reminder for open tasks due today or earlier, below the daily cap.
	RunReminderSweep(ctx context.Context, organizationID string) (*RunSummary, error)

	RunOverdueSweep(ctx context.Context) (*RunSummary, error)
	RunAutoReschedule(ctx context.Context, organizationID string) (*RunSummary, error)
	RunDailySnapshot(ctx context.Context, organizationID string) (*RunSummary, error)

	// RunJob runs a job by name; see constants.Job*.
	RunJob(ctx context.Context, job, organizationID string) (*RunSummary, error)
}
