package service

import (
	"context"
)

// TaskAssignedEvent is published whenever a maintenance task gets an assignee.
type TaskAssignedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	EventType      string `json:"event_type"`
	TaskID         string `json:"task_id"`
	DeviceID       string `json:"device_id"`
	OrganizationID string `json:"organization_id"`
	AssigneeID     string `json:"assignee_id"`
	AssignedBy     string `json:"assigned_by,omitempty"`
	AssignedAt     string `json:"assigned_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskAssigned publishes an assignment for asynchronous notification
	PublishTaskAssigned(ctx context.Context, event *TaskAssignedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
