package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceTaskRepository_ShortCircuits(t *testing.T) {
	// A nil handle proves no statement is issued.
	repo := NewMaintenanceTaskRepository(nil)
	ctx := context.Background()
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	changed, err := repo.MarkOverdue(ctx, nil, today, today)
	require.NoError(t, err)
	assert.Zero(t, changed)

	ordinal, err := repo.ClaimReminder(ctx, uuid.New(), today, 0)
	require.NoError(t, err)
	assert.Zero(t, ordinal)
}

func TestClaimReminderSQL_CapsInsideTheUpsert(t *testing.T) {
	assert.Contains(t, claimReminderSQL, "ON CONFLICT (task_id, reminder_date) DO UPDATE")
	assert.Contains(t, claimReminderSQL, "WHERE maintenance_reminders.sent < ?")
	assert.Contains(t, claimReminderSQL, "RETURNING sent")
}
