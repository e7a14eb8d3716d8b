package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
)

// TraceIDHeader carries the trace ID on requests and responses.
const TraceIDHeader = "X-Trace-ID"

// inboundTraceID limits which client-supplied trace IDs are reused.
var inboundTraceID = regexp.MustCompile(`^[A-Za-z0-9-]{8,64}$`)

// TraceMiddleware adds a trace ID to the request context along with a logger
// that tags every record with it. A well-formed X-Trace-ID request header is
// reused; otherwise a new ID is generated. The ID is echoed in the response.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if !inboundTraceID.MatchString(traceID) {
				traceID = shared.NewTraceID()
			}

			log := base.With(slog.String("trace_id", traceID))
			ctx := logger.WithLogger(shared.WithTraceID(r.Context(), traceID), log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
