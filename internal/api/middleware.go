package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/linguaflow/scorereport/internal/auth"
	"github.com/linguaflow/scorereport/internal/logger"
)

type contextKey string

const identityContextKey contextKey = "identity"

func identityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(auth.Identity)
	return id, ok
}

// loggingMiddleware attaches a request-scoped logger and logs completed
// requests with timing and status.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		log := logger.FromContext(r.Context()).With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		r = r.WithContext(logger.WithContext(r.Context(), log))

		w.Header().Set("X-Request-ID", requestID)
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		event := log.Info()
		if wrapped.Status() >= 500 {
			event = log.Error()
		} else if wrapped.Status() >= 400 {
			event = log.Warn()
		}
		event.
			Int("status", wrapped.Status()).
			Int("size", wrapped.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

// recoveryMiddleware recovers from panics and logs them.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error().Interface("panic", rec).Msg("panic recovered")
				writeErrorBody(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authMiddleware resolves the caller identity and rejects anonymous requests.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := s.Resolver.Resolve(r)
		if err != nil {
			handleError(w, r, err)
			return
		}
		if caller == nil {
			writeErrorBody(w, http.StatusUnauthorized, "AUTHENTICATION_REQUIRED", "authentication required")
			return
		}

		log := logger.FromContext(r.Context()).With().Str("user_id", caller.UserID).Logger()
		ctx := logger.WithContext(r.Context(), log)
		ctx = context.WithValue(ctx, identityContextKey, *caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
