package middleware

import (
	"net/http"

	"github.com/ceramiqa/quality-management/pkg/logger"
	"github.com/google/uuid"
)

// RequestID honours an inbound X-Trace-ID so a caller can correlate requests
// across services; otherwise a fresh id is minted.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
