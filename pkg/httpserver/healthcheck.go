package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/djedproject/formatter/pkg/logger"
	"github.com/djedproject/formatter/pkg/response"
)

// Check reports whether a dependency is ready.
type Check func(ctx context.Context) error

// HealthHandler answers {"data":{"status":"ok"}} when every check passes and
// a 503 otherwise. Without checks it acts as a liveness check.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	log = logger.OrDiscard(log)
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				_ = response.Error(w, errUnavailable)
				return
			}
		}
		_ = response.JSON(w, map[string]string{"status": "ok"})
	}
}

var errUnavailable = response.NewHTTPError(http.StatusServiceUnavailable, "unavailable")
