package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/AddressBook/internal/domain"
	"github.com/GoArmGo/AddressBook/internal/usecase"
)

type contextKey string

const userContextKey contextKey = "current-user"

// UserFromContext достает аутентифицированного пользователя,
// положенного в контекст auth-middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// Authenticator — middleware, разбирающая заголовок Authorization: Bearer <token>.
// Токен проверяется, пользователь перечитывается из бд и кладется в контекст;
// любая неудача — 401 без уточнений.
func Authenticator(uc usecase.AuthUseCase, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				logger.Warn("missing bearer token", "path", r.URL.Path)
				respondWithError(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error(), logger)
				return
			}

			user, err := uc.CurrentUser(r.Context(), token)
			if err != nil {
				logger.Warn("bearer token rejected", "path", r.URL.Path)
				respondWithError(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error(), logger)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
