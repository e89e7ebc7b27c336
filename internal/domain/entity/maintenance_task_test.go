package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceTask_IsOverdueOn(t *testing.T) {
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status MaintenanceStatus
		due    time.Time
		want   bool
	}{
		{"active due yesterday", StatusActive, today.AddDate(0, 0, -1), true},
		{"active due today", StatusActive, today, false},
		{"active due tomorrow", StatusActive, today.AddDate(0, 0, 1), false},
		{"already overdue", StatusOverdue, today.AddDate(0, 0, -10), false},
		{"pending", StatusPending, today.AddDate(0, 0, -1), false},
		{"completed", StatusCompleted, today.AddDate(0, 0, -1), false},
		{"cancelled", StatusCancelled, today.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &MaintenanceTask{Status: tt.status, NextMaintenance: tt.due}

			assert.Equal(t, tt.want, task.IsOverdueOn(today))
		})
	}
}

func TestMaintenanceTask_IsOverdueOn_IgnoresTimeOfDay(t *testing.T) {
	task := &MaintenanceTask{Status: StatusActive, NextMaintenance: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}

	assert.False(t, task.IsOverdueOn(time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)))
	assert.True(t, task.IsOverdueOn(time.Date(2024, time.March, 16, 0, 1, 0, 0, time.UTC)))
}
