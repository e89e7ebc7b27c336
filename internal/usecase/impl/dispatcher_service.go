package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"text/template"
	"time"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// button is one action offered in an outgoing message.
type button struct {
	Label string
	Style string
}

var (
	assignedButtons = []button{
		{Label: "Mark as Completed", Style: "primary"},
		{Label: "Reschedule Task", Style: "default"},
		{Label: "View Details", Style: "default"},
	}
	reminderButtons = []button{
		{Label: "Mark as Completed", Style: "primary"},
		{Label: "Reschedule Task", Style: "default"},
		{Label: "Escalate to Manager", Style: "danger"},
	}
)

// defaultStyles is used for priorities missing from notification.styles.
var defaultStyles = map[entity.MaintenancePriority]config.StyleConfig{
	entity.PriorityCritical: {Emoji: "🔴", Color: "#d32f2f", DisplayName: "Critical", PriorityLevel: 4},
	entity.PriorityHigh:     {Emoji: "🔴", Color: "#f57c00", DisplayName: "High", PriorityLevel: 3},
	entity.PriorityMedium:   {Emoji: "🟡", Color: "#fbc02d", DisplayName: "Medium", PriorityLevel: 2},
	entity.PriorityLow:      {Emoji: "🟢", Color: "#388e3c", DisplayName: "Low", PriorityLevel: 1},
}

const assignedTemplate = `Post a Slack message to channel_id={{.ChannelID}}.
Include both plain text and blocks in the same message.

Text: '🔧 Maintenance Alert: {{.DeviceName}} requires scheduled maintenance. A new maintenance task has been assigned for completion.'

Blocks:
1. Header block: '🔧 Maintenance Task Assigned'
2. Section block with fields:
   - Task ID: {{.TaskID}}
   - Task: {{.TaskName}}
   - Priority: {{.Style.Emoji}} {{.Style.DisplayName}} (level {{.Style.PriorityLevel}})
   - Status: {{.Status}}
   - Target Device: {{.DeviceName}}
   - Assigned To: {{.Assignee}}
   - Due Date: {{.DueDate}}
   - Timestamp: {{.Timestamp}}
3. Section block with plain text: 'Description: {{.Description}}'
4. Divider block
5. Actions block with buttons:
{{- range .Buttons}}
   - '{{.Label}}' ({{.Style}} style)
{{- end}}
{{- if .DetailsURL}}
Details link: {{.DetailsURL}}
{{- end}}
`

const reminderTemplate = `Post a Slack message to channel_id={{.ChannelID}}.
Include both plain text and blocks in the same message.

Text: '⚠️ Maintenance Reminder #{{.Reminder}}: {{.DeviceName}} requires urgent maintenance. This is reminder #{{.Reminder}} of {{.MaxReminders}}. Please complete the maintenance task immediately.'

Blocks:
1. Header block: '⚠️ Maintenance Reminder #{{.Reminder}} - Overdue Task'
2. Section block with fields:
   - Task ID: {{.TaskID}}
   - Task: {{.TaskName}}
   - Priority: {{.Style.Emoji}} {{.Style.DisplayName}} (level {{.Style.PriorityLevel}})
   - Status: Overdue - Reminder #{{.Reminder}} of {{.MaxReminders}}
   - Target Device: {{.DeviceName}}
   - Assigned To: {{.Assignee}}
   - Due Date: {{.DueDate}} (Overdue)
   - Timestamp: {{.Timestamp}}
3. Section block with plain text: 'Description: This is reminder #{{.Reminder}} for {{.TaskName}} on {{.DeviceName}}. The task is overdue and requires immediate attention.'
4. Divider block
5. Actions block with buttons:
{{- range .Buttons}}
   - '{{.Label}}' ({{.Style}} style)
{{- end}}
{{- if .DetailsURL}}
Details link: {{.DetailsURL}}
{{- end}}
`

var (
	messageTemplates = template.Must(template.New("assigned").Parse(assignedTemplate))
	_                = template.Must(messageTemplates.New("reminder").Parse(reminderTemplate))

	nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// noticeView is the data handed to the message templates.
type noticeView struct {
	ChannelID    string
	TaskID       string
	TaskName     string
	Description  string
	DeviceName   string
	Assignee     string
	Status       string
	DueDate      string
	Timestamp    string
	DetailsURL   string
	Reminder     int
	MaxReminders int
	Style        config.StyleConfig
	Buttons      []button
}

type dispatcherService struct {
	sink         service.ConversationSink
	channelID    string
	maxAttempts  int
	retryDelay   time.Duration
	maxReminders int
	styles       map[string]config.StyleConfig
	dashboardURL string
	location     *time.Location
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error
	logger       *slog.Logger
}

// DispatcherServiceParams holds dependencies for the notification dispatcher.
type DispatcherServiceParams struct {
	fx.In

	Sink   service.ConversationSink
	Config *config.Config
	Logger *slog.Logger
}

// NewDispatcherService creates the dispatcher backed by the conversation sink.
func NewDispatcherService(params DispatcherServiceParams) usecase.NotificationDispatcher {
	cfg := params.Config

	maxAttempts := cfg.Conversation.MaxRetries
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &dispatcherService{
		sink:         params.Sink,
		channelID:    cfg.Conversation.ChannelID,
		maxAttempts:  maxAttempts,
		retryDelay:   cfg.Conversation.RetryDelay,
		maxReminders: cfg.Notification.MaxRemindersPerDay,
		styles:       cfg.Notification.Styles,
		dashboardURL: strings.TrimRight(cfg.Notification.DashboardURL, "/"),
		location:     schedulerLocation(cfg),
		now:          time.Now,
		sleep:        sleepContext,
		logger:       params.Logger.With(slog.String("component", "dispatcher")),
	}
}

// Send renders the notice for ordinal (0 = assignment, 1..max = reminder #N) and delivers it.
func (d *dispatcherService) Send(ctx context.Context, notice *entity.TaskNotice, ordinal int) entity.DispatchOutcome {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	if notice == nil || notice.Task == nil {
		logger.Error("[Dispatcher] Notice without task")

		return entity.DispatchOutcome{Reason: entity.DispatchInvalidRequest}
	}
	if ordinal < 0 || ordinal > d.maxReminders {
		logger.Error("[Dispatcher] Reminder number out of range",
			slog.Int("reminder", ordinal),
			slog.Int("max", d.maxReminders),
		)

		return entity.DispatchOutcome{Reason: entity.DispatchInvalidRequest}
	}

	message, err := d.render(notice, ordinal)
	if err != nil {
		logger.Error("[Dispatcher] Failed to render message", slog.Any("error", err))

		return entity.DispatchOutcome{Reason: entity.DispatchInvalidRequest}
	}

	return d.deliver(ctx, logger.With(
		slog.String("task_id", notice.Task.ID.String()),
		slog.String("assignee_id", notice.AssigneeID.String()),
		slog.Int("reminder", ordinal),
	), message)
}

// SendCustom delivers message as is.
func (d *dispatcherService) SendCustom(ctx context.Context, message string) entity.DispatchOutcome {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	if strings.TrimSpace(message) == "" {
		return entity.DispatchOutcome{Reason: entity.DispatchInvalidRequest}
	}

	return d.deliver(ctx, logger.With(slog.String("kind", "custom")), message)
}

// deliver runs the attempt loop: success and 400/404 end it at once, anything
// else waits retryDelay and tries again until maxAttempts is used up.
func (d *dispatcherService) deliver(ctx context.Context, logger *slog.Logger, message string) entity.DispatchOutcome {
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.sink.Post(ctx, message)
		if err == nil {
			logger.Info("[Dispatcher] Notification delivered", slog.Int("attempt", attempt))

			return entity.DispatchOutcome{Delivered: true, Attempts: attempt, Reason: entity.DispatchSuccess}
		}

		var statusErr *service.SinkStatusError
		if errors.As(err, &statusErr) && statusErr.Rejected() {
			logger.Error("[Dispatcher] Notification rejected",
				slog.Int("attempt", attempt),
				slog.Int("status", statusErr.StatusCode),
				slog.String("body", statusErr.Body),
			)

			return entity.DispatchOutcome{Attempts: attempt, Reason: entity.DispatchNonRetryable}
		}

		logger.Warn("[Dispatcher] Notification attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", d.maxAttempts),
			slog.Any("error", err),
		)

		if attempt == d.maxAttempts {
			break
		}

		if err := d.sleep(ctx, d.retryDelay); err != nil {
			logger.Warn("[Dispatcher] Interrupted while waiting for retry", slog.Int("attempt", attempt))

			return entity.DispatchOutcome{Attempts: attempt, Reason: entity.DispatchInterrupted}
		}
	}

	logger.Error("[Dispatcher] Notification not delivered", slog.Int("attempts", d.maxAttempts))

	return entity.DispatchOutcome{Attempts: d.maxAttempts, Reason: entity.DispatchExhausted}
}

func (d *dispatcherService) render(notice *entity.TaskNotice, ordinal int) (string, error) {
	task := notice.Task
	now := d.now().In(d.location)

	deviceName := strings.TrimSpace(notice.DeviceName)
	if deviceName == "" {
		deviceName = "Unknown Device"
	}

	assignee := strings.TrimSpace(notice.AssigneeName)
	if assignee == "" {
		assignee = "Unassigned"
	}

	description := strings.TrimSpace(task.Description)
	if description == "" {
		description = "Scheduled maintenance task for " + deviceName + ". Task: " + task.TaskName + "."
	}

	view := noticeView{
		ChannelID:    d.channelID,
		TaskID:       displayTaskID(notice.DeviceName, task.TaskName, now),
		TaskName:     task.TaskName,
		Description:  description,
		DeviceName:   deviceName,
		Assignee:     assignee,
		Status:       string(task.Status),
		DueDate:      dueLabel(task.NextMaintenance, now),
		Timestamp:    now.Format("2006-01-02 03:04 PM MST"),
		Reminder:     ordinal,
		MaxReminders: d.maxReminders,
		Style:        d.style(task.Priority),
		Buttons:      assignedButtons,
	}
	if d.dashboardURL != "" {
		view.DetailsURL = d.dashboardURL + "/maintenance/" + task.ID.String()
	}

	name := "assigned"
	if ordinal > 0 {
		name = "reminder"
		view.Buttons = reminderButtons
	}

	var sb strings.Builder
	if err := messageTemplates.ExecuteTemplate(&sb, name, view); err != nil {
		return "", errors.Wrapf(err, "failed to render %s message", name)
	}

	return sb.String(), nil
}

func (d *dispatcherService) style(priority entity.MaintenancePriority) config.StyleConfig {
	if style, ok := d.styles[string(priority)]; ok {
		return style
	}
	if style, ok := defaultStyles[priority]; ok {
		return style
	}

	return defaultStyles[entity.PriorityMedium]
}

// displayTaskID builds MT-<DEV4>-<TASK4>-<MMDD> from the alphanumerics of both names.
func displayTaskID(deviceName, taskName string, at time.Time) string {
	short := func(s string) string {
		s = strings.ToUpper(nonAlphanumeric.ReplaceAllString(s, ""))
		if len(s) > 4 {
			s = s[:4]
		}

		return s
	}

	dev, task := short(deviceName), short(taskName)
	if dev == "" || task == "" {
		return "MT-" + at.Format("20060102150405")
	}

	return "MT-" + dev + "-" + task + "-" + at.Format("0102")
}

func dueLabel(due, now time.Time) string {
	if due.IsZero() {
		return "Not scheduled"
	}
	if entity.CalendarDay(now).Equal(entity.CalendarDay(due)) {
		return "Today"
	}

	return due.Format("2006-01-02")
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
