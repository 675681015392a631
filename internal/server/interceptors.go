package server

import (
	"net/http"
	"time"

	"github.com/goto/discuss/pkg/audit"
	"github.com/goto/discuss/pkg/log"
)

const (
	logActorKey    = "actor"
	logHTTPPathKey = "http_path"
)

// headerAuthMiddleware trusts the upstream proxy to put the authenticated
// user in headerKey.
func headerAuthMiddleware(headerKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userEmail := r.Header.Get(headerKey); userEmail != "" {
			r = r.WithContext(audit.WithActor(r.Context(), userEmail))
		}
		next.ServeHTTP(w, r)
	})
}

func enrichLogFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields := []interface{}{logHTTPPathKey, r.URL.Path}
		if actor := audit.ActorFromContext(r.Context()); actor != "" {
			fields = append(fields, logActorKey, actor)
		}
		next.ServeHTTP(w, r.WithContext(log.WithFields(r.Context(), fields...)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info(r.Context(), "request handled",
			"method", r.Method,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
