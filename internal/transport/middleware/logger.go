package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-planner/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// route, status code, duration, and context identifiers (request_id, user_id).
// The user ID is read after the handler ran, so Logger may sit outside Auth.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			holder := &userHolder{}

			next.ServeHTTP(sw, r.WithContext(withUserHolder(r.Context(), holder)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					attrs = append(attrs, slog.String("route", pattern))
				}
			}
			if userID, ok := holder.get(); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			} else if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status == http.StatusTooManyRequests:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// userHolder lets Auth report the resolved user back to Logger, which wraps
// it and only sees the outer request context.
type userHolder struct {
	mu sync.Mutex
	id uuid.UUID
}

type holderKey struct{}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func (h *userHolder) get() (uuid.UUID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id, h.id != uuid.Nil
}

func recordUser(ctx context.Context, id uuid.UUID) {
	if h, ok := ctx.Value(holderKey{}).(*userHolder); ok {
		h.mu.Lock()
		h.id = id
		h.mu.Unlock()
	}
}
