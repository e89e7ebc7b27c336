package service

import (
	"context"
)

// PushBatchLimit is the largest token batch a single push call accepts.
const PushBatchLimit = 500

// PushService defines the interface for mobile push notification delivery
type PushService interface {
	// SendBatchNotification sends push notifications to at most PushBatchLimit tokens.
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
