package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	shuttingDownBody = `{"message":"Service is shutting down"}`
	retryAfter       = 5 * time.Second
)

// Middleware пропускает запросы, пока ongoingCtx жив. После его отмены в ходе
// остановки отвечает 503 и просит клиента закрыть соединение и прийти к другому инстансу.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	retryAfterSeconds := strconv.Itoa(int(retryAfter.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isShuttingDown.Load() || ongoingCtx.Err() == nil {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Content-Type", "application/json")
			h.Set("Connection", "close")
			h.Set("Retry-After", retryAfterSeconds)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(shuttingDownBody))
		})
	}
}
