package middleware

import (
	"net/http"

	"book-review-api/pkg/utils"

	"github.com/google/uuid"
)

// RequestID assigns a fresh id to every request and echoes it back in the
// X-Request-ID header so clients can correlate log lines.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New()

			ctx := utils.SetRequestIDContext(r.Context(), id)
			w.Header().Set("X-Request-ID", id.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
