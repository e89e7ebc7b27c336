package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"conversation": map[string]any{
			"maxRetries": 3,
			"retryDelay": "1s",
		},
		"scheduler": map[string]any{
			"organizationId": "",
			"dailyCron":      "0 0 4 * * *",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CONVERSATION_MAXRETRIES", want: "conversation.maxRetries"},
		{envKey: "CONVERSATION_RETRYDELAY", want: "conversation.retryDelay"},
		{envKey: "SCHEDULER_ORGANIZATIONID", want: "scheduler.organizationId"},
		{envKey: "SCHEDULER__DAILYCRON", want: "scheduler.dailyCron"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	assert.Equal(t, 3, cfg.Conversation.MaxRetries)
	assert.Equal(t, time.Second, cfg.Conversation.RetryDelay)
	assert.Equal(t, 10*time.Second, cfg.Conversation.Timeout)
	assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
	assert.Equal(t, "0 0 4 * * *", cfg.Scheduler.DailyCron)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.OverdueCron)
	assert.Equal(t, 4, cfg.Scheduler.Workers)
	assert.Equal(t, 3, cfg.Notification.MaxRemindersPerDay)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	var cfg Config
	cfg.Conversation.MaxRetries = 5
	cfg.Conversation.RetryDelay = 250 * time.Millisecond
	cfg.Scheduler.Workers = 1

	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.Conversation.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Conversation.RetryDelay)
	assert.Equal(t, 1, cfg.Scheduler.Workers)
}

func TestSchedulerLocation(t *testing.T) {
	loc, err := SchedulerConfig{Timezone: "Asia/Taipei"}.Location()
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Taipei", loc.String())

	_, err = SchedulerConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
