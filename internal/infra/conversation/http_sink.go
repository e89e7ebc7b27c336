// Package conversation posts maintenance messages to the external conversation bot.
package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"upkeep/config"
	"upkeep/internal/domain/service"

	"github.com/pkg/errors"
)

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

type postRequest struct {
	Message   string `json:"message"`
	ChannelID string `json:"channel_id,omitempty"`
}

// httpSink implements service.ConversationSink over HTTP.
type httpSink struct {
	endpoint   string
	channelID  string
	httpClient *http.Client
}

// NewHTTPSink creates the sink from the conversation section.
func NewHTTPSink(cfg *config.Config) (service.ConversationSink, error) {
	endpoint := strings.TrimSpace(cfg.Conversation.BaseURL)
	if endpoint == "" {
		return nil, errors.New("conversation base URL is required")
	}

	return &httpSink{
		endpoint:  endpoint,
		channelID: cfg.Conversation.ChannelID,
		httpClient: &http.Client{
			Timeout: cfg.Conversation.Timeout,
		},
	}, nil
}

// Post performs a single POST of {"message": ...}.
func (s *httpSink) Post(ctx context.Context, message string) error {
	body, err := json.Marshal(postRequest{Message: message, ChannelID: s.channelID})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "conversation sink request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &service.SinkStatusError{
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}
}
