package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "upkeep/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxInboundRequestIDLen caps ids accepted from callers; longer ones are replaced.
const maxInboundRequestIDLen = 128

// RequestIDMiddleware tags every request with an id shared by the response
// envelope, the X-Request-Id header and the request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is usable and mints one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		ctx := deliverycontext.WithRequestScope(req.Context(), m.logger, inboundRequestID(req.Header.Get(deliverycontext.HeaderXRequestID)))
		requestID := deliverycontext.GetRequestIDFromContext(ctx)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func inboundRequestID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) > maxInboundRequestIDLen || strings.ContainsAny(id, "\r\n") {
		return ""
	}

	return id
}
