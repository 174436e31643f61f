package token_bucket

import "time"

func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return newTokenBucket(capacity, refillRate, now)
}

func NewKeyedWithClock(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *Keyed {
	return newKeyed(capacity, refillRate, idleTTL, now)
}
