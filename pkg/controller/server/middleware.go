package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))

		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// requireAPIToken is a no-op when token is empty.
func requireAPIToken(token types.APIToken) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
				logging.From(r.Context()).Warn("rejected API request without valid token",
					slog.String("path", r.URL.Path))
				writeJSON(w, http.StatusUnauthorized, errorResponse{
					ErrorKind: "unauthenticated",
					Message:   "invalid API token",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
