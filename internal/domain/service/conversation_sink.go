// Package service declares the ports to external collaborators.
package service

import (
	"context"
	"fmt"
	"net/http"
)

// ConversationSink delivers a rendered message to the external conversation bot.
type ConversationSink interface {
	// Post performs exactly one delivery attempt. A nil error means the sink
	// answered 2xx. A non-2xx answer is reported as *SinkStatusError; any other
	// error is a transport failure.
	Post(ctx context.Context, message string) error
}

// SinkStatusError is returned when the sink answered with a non-2xx status.
type SinkStatusError struct {
	StatusCode int
	Body       string
}

func (e *SinkStatusError) Error() string {
	return fmt.Sprintf("conversation sink responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Rejected reports whether the sink refused the message for good.
func (e *SinkStatusError) Rejected() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusNotFound
}
