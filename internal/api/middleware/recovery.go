package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// RecoveryMiddleware перехватывает панику в обработчике, отправляет ее
// в Sentry и возвращает клиенту 500 без деталей.
func RecoveryMiddleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic in %s %s: %v", r.Method, r.URL.Path, rec)
					logger.Error("RecoveryMiddleware: %v", err)

					if hub := sentry.CurrentHub(); hub.Client() != nil {
						hub.CaptureException(err)
					}

					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
