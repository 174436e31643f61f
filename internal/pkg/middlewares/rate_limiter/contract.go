package rate_limiter

import "marketplace/pkg/logger"

// Limiter решает по ключу клиента, пропускать ли запрос.
type Limiter interface {
	Allow(key string) bool
}

// trackedCounter необязательное расширение Limiter, см. token_bucket.Keyed.
type trackedCounter interface {
	Len() int
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
