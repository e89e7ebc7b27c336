package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	mockSvc "upkeep/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	sink   *mockSvc.MockConversationSink
	sleeps []time.Duration
}

func createTestDispatcherService(t *testing.T) (*dispatcherService, *dispatcherFixtures) {
	t.Helper()

	fx := &dispatcherFixtures{sink: mockSvc.NewMockConversationSink(t)}

	cfg := newTestConfig()
	cfg.Conversation.ChannelID = "C-OPS"

	svc := NewDispatcherService(DispatcherServiceParams{
		Sink:   fx.sink,
		Config: cfg,
		Logger: newDiscardLogger(),
	}).(*dispatcherService)
	svc.now = func() time.Time { return fixedNow }
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		fx.sleeps = append(fx.sleeps, d)

		return ctx.Err()
	}

	return svc, fx
}

func testNotice() *entity.TaskNotice {
	return &entity.TaskNotice{
		Task: &entity.MaintenanceTask{
			ID:              uuid.New(),
			TaskName:        "Replace filter",
			Priority:        entity.PriorityHigh,
			Status:          entity.StatusActive,
			NextMaintenance: day(2024, time.March, 15),
		},
		DeviceName:   "Pump-A 01",
		AssigneeID:   uuid.New(),
		AssigneeName: "Ada Lovelace",
	}
}

func TestDispatcherService_Send_SuccessFirstAttempt(t *testing.T) {
	svc, fx := createTestDispatcherService(t)
	ctx := context.Background()

	var posted string
	fx.sink.EXPECT().Post(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, message string) { posted = message }).
		Return(nil).Once()

	outcome := svc.Send(ctx, testNotice(), 0)

	assert.Equal(t, entity.DispatchOutcome{Delivered: true, Attempts: 1, Reason: entity.DispatchSuccess}, outcome)
	assert.Empty(t, fx.sleeps)
	assert.Contains(t, posted, "channel_id=C-OPS")
	assert.Contains(t, posted, "Task ID: MT-PUMP-REPL-0315")
	assert.Contains(t, posted, "Priority: 🔴 High (level 3)")
	assert.Contains(t, posted, "Due Date: Today")
	assert.Contains(t, posted, "'View Details' (default style)")
	assert.NotContains(t, posted, "Escalate to Manager")
}

func TestDispatcherService_Send_ReminderTemplate(t *testing.T) {
	svc, fx := createTestDispatcherService(t)
	ctx := context.Background()

	var posted string
	fx.sink.EXPECT().Post(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, message string) { posted = message }).
		Return(nil).Once()

	outcome := svc.Send(ctx, testNotice(), 2)

	assert.True(t, outcome.Delivered)
	assert.Contains(t, posted, "Maintenance Reminder #2")
	assert.Contains(t, posted, "reminder #2 of 3")
	assert.Contains(t, posted, "'Escalate to Manager' (danger style)")
}

func TestDispatcherService_Send_ExhaustsRetries(t *testing.T) {
	svc, fx := createTestDispatcherService(t)
	ctx := context.Background()

	fx.sink.EXPECT().Post(ctx, mock.Anything).
		Return(&service.SinkStatusError{StatusCode: http.StatusServiceUnavailable}).Times(3)

	outcome := svc.Send(ctx, testNotice(), 0)

	assert.Equal(t, entity.DispatchOutcome{Attempts: 3, Reason: entity.DispatchExhausted}, outcome)
	assert.True(t, outcome.Retryable())
	assert.Equal(t, []time.Duration{time.Second, time.Second}, fx.sleeps)
}

func TestDispatcherService_Send_NonRetryableRejection(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusBadRequest} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			svc, fx := createTestDispatcherService(t)
			ctx := context.Background()

			fx.sink.EXPECT().Post(ctx, mock.Anything).
				Return(errors.WithStack(&service.SinkStatusError{StatusCode: status})).Once()

			outcome := svc.Send(ctx, testNotice(), 1)

			assert.Equal(t, entity.DispatchOutcome{Attempts: 1, Reason: entity.DispatchNonRetryable}, outcome)
			assert.False(t, outcome.Retryable())
			assert.Empty(t, fx.sleeps)
		})
	}
}

func TestDispatcherService_Send_RecoversAfterTransportError(t *testing.T) {
	svc, fx := createTestDispatcherService(t)
	ctx := context.Background()

	fx.sink.EXPECT().Post(ctx, mock.Anything).Return(errors.New("connection refused")).Once()
	fx.sink.EXPECT().Post(ctx, mock.Anything).Return(&service.SinkStatusError{StatusCode: http.StatusTooManyRequests}).Once()
	fx.sink.EXPECT().Post(ctx, mock.Anything).Return(nil).Once()

	outcome := svc.Send(ctx, testNotice(), 0)

	assert.Equal(t, entity.DispatchOutcome{Delivered: true, Attempts: 3, Reason: entity.DispatchSuccess}, outcome)
	assert.Len(t, fx.sleeps, 2)
}

func TestDispatcherService_Send_InterruptedWait(t *testing.T) {
	svc, fx := createTestDispatcherService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.sink.EXPECT().Post(ctx, mock.Anything).
		Run(func(context.Context, string) { cancel() }).
		Return(errors.New("connection reset")).Once()

	outcome := svc.Send(ctx, testNotice(), 0)

	assert.Equal(t, entity.DispatchOutcome{Attempts: 1, Reason: entity.DispatchInterrupted}, outcome)
	assert.True(t, outcome.Retryable())
}

func TestDispatcherService_Send_InvalidRequest(t *testing.T) {
	svc, _ := createTestDispatcherService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		notice  *entity.TaskNotice
		ordinal int
	}{
		{name: "negative ordinal", notice: testNotice(), ordinal: -1},
		{name: "ordinal above daily cap", notice: testNotice(), ordinal: 4},
		{name: "missing task", notice: &entity.TaskNotice{}, ordinal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := svc.Send(ctx, tt.notice, tt.ordinal)

			assert.Equal(t, entity.DispatchOutcome{Reason: entity.DispatchInvalidRequest}, outcome)
		})
	}
}

func TestDispatcherService_SendCustom(t *testing.T) {
	svc, fx := createTestDispatcherService(t)
	ctx := context.Background()

	fx.sink.EXPECT().Post(ctx, "Plant shutdown at 18:00").Return(nil).Once()

	outcome := svc.SendCustom(ctx, "Plant shutdown at 18:00")

	require.True(t, outcome.Delivered)
	assert.Equal(t, 1, outcome.Attempts)
}

func TestDisplayTaskID(t *testing.T) {
	at := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "MT-PUMP-REPL-0704", displayTaskID("Pump-A 01", "Replace filter", at))
	assert.Equal(t, "MT-AB-X1-0704", displayTaskID("a-b", "x/1", at))
	assert.Equal(t, "MT-20240704000000", displayTaskID("", "Replace filter", at))
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
