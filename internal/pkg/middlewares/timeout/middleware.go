package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"marketplace/pkg/logger"
)

const timeoutBody = `{"message":"Request timed out"}`

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}

// Middleware ограничивает время обработки запроса. Контекст запроса наследует
// ongoingCtx сервера (BaseContext), поэтому отменяется и при остановке.
// Если обработчик упёрся в дедлайн и ничего не ответил, клиент получает 504.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			var wroteHeader bool
			tracked := httpsnoop.Wrap(w, httpsnoop.Hooks{
				WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						wroteHeader = true
						next(code)
					}
				},
				Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(b []byte) (int, error) {
						wroteHeader = true
						return next(b)
					}
				},
			})

			next.ServeHTTP(tracked, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			route := routeTemplate(r)
			RequestTimeoutsTotal.WithLabelValues(r.Method, route).Inc()
			log.Warn("request deadline exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("timeout", timeout),
			)

			if !wroteHeader {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusGatewayTimeout)
				_, _ = w.Write([]byte(timeoutBody))
			}
		})
	}
}

func routeTemplate(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return "unmatched"
}
