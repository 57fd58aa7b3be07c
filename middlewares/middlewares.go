package middlewares

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/infra/db"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	databaseKey
	databaseNameKey
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Status: "error", Message: message})
}

func SetContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// RequestID tags every request with an id, reusing the caller's when it sends one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(consts.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(consts.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// APIKeyAuth rejects requests without the configured key. Paths in exempt pass through.
func APIKeyAuth(apiKey string, exempt ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get(consts.HeaderAPIKey)
			if got == "" {
				writeError(w, http.StatusUnauthorized, "API key is required")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				log.Warnf("[Auth] Rejected key for %s %s", r.Method, r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// DatabaseSelector resolves the X-Database header against the registry and stores the pool in the
// request context.
func DatabaseSelector(registry *db.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, name, err := registry.Get(r.Header.Get(consts.HeaderDatabase))
			if err != nil {
				if errors.Is(err, db.ErrUnknownDatabase) {
					writeError(w, http.StatusForbidden, "Access to this database is not permitted")
					return
				}
				writeError(w, http.StatusInternalServerError, "Database unavailable")
				return
			}
			ctx := context.WithValue(r.Context(), databaseKey, conn)
			ctx = context.WithValue(ctx, databaseNameKey, name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DatabaseFromContext returns the pool chosen by DatabaseSelector.
func DatabaseFromContext(ctx context.Context) (*gorm.DB, string) {
	conn, _ := ctx.Value(databaseKey).(*gorm.DB)
	name, _ := ctx.Value(databaseNameKey).(string)
	return conn, name
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Infof("[HTTP] %s %s %d %s id=%s", r.Method, r.URL.Path, rec.status,
			time.Since(start).Round(time.Millisecond), RequestIDFromContext(r.Context()))
	})
}
