/**
 * @description
 * Distributed fixed-window rate limiting for the public lead forms,
 * backed by Redis so multiple instances share one budget. The increment
 * and expiry run in a single Lua script to keep the window atomic. A nil
 * limiter (no Redis configured) allows everything.
 *
 * @dependencies
 * - github.com/redis/go-redis/v9: Redis client and Lua script support.
 */

package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var formRateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// FormRateLimiter caps public form submissions per subject per window.
type FormRateLimiter struct {
	client redis.UniversalClient
	prefix string
}

// NewFormRateLimiter creates a limiter with the given key prefix.
func NewFormRateLimiter(client redis.UniversalClient, prefix string) *FormRateLimiter {
	trimmed := strings.TrimSpace(prefix)
	if trimmed == "" {
		trimmed = "leadcitymfb:rate_limit"
	}
	return &FormRateLimiter{client: client, prefix: strings.TrimSuffix(trimmed, ":")}
}

// Allow consumes one submission for subject within scope. When the limit
// is exceeded it returns allowed=false and how long the caller should
// wait. Limiter errors fail open: losing Redis must not block leads.
func (l *FormRateLimiter) Allow(ctx context.Context, scope, subject string, limit int, window time.Duration) (allowed bool, retryAfterSeconds int, err error) {
	if l == nil || l.client == nil || limit <= 0 || window <= 0 {
		return true, 0, nil
	}
	scope = strings.TrimSpace(scope)
	subject = strings.TrimSpace(subject)
	if scope == "" || subject == "" {
		return true, 0, nil
	}

	windowMs := window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}

	key := fmt.Sprintf("%s:%s:%s", l.prefix, scope, subject)
	raw, err := formRateLimitScript.Run(ctx, l.client, []string{key}, windowMs).Result()
	if err != nil {
		return true, 0, err
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) != 2 {
		return true, 0, fmt.Errorf("unexpected rate limiter response shape: %T", raw)
	}
	count, ok := values[0].(int64)
	if !ok {
		return true, 0, fmt.Errorf("unexpected rate limiter count type: %T", values[0])
	}
	ttlMs, ok := values[1].(int64)
	if !ok {
		return true, 0, fmt.Errorf("unexpected rate limiter ttl type: %T", values[1])
	}
	if ttlMs < 0 {
		ttlMs = windowMs
	}

	if count > int64(limit) {
		retryAfter := int(math.Ceil(float64(ttlMs) / 1000.0))
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter, nil
	}
	return true, 0, nil
}
