package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/showcase/pkg/logger"
)

// LoggerExtractor adds the request ID to every record logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		requestID := FromContext(ctx)
		if requestID == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(requestID), true
	}
}
