package handlers

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"
)

// KeyFunc identifies the caller a throttle bucket belongs to.
type KeyFunc func(r *http.Request) string

// ClientKey buckets by remote address. Run after middleware.RealIP.
func ClientKey(r *http.Request) string {
	return "ip:" + clientIP(r)
}

// PrincipalKey buckets by authenticated user, falling back to the address.
func PrincipalKey(r *http.Request) string {
	if p, ok := PrincipalFrom(r.Context()); ok {
		return "user:" + strconv.FormatInt(p.UserID, 10)
	}
	return ClientKey(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Throttle allows limit requests per window for each key, using a fixed
// window counter in Redis. Without Redis, or when Redis fails, requests
// pass through.
func (h *Handler) Throttle(scope string, limit int, window time.Duration, key KeyFunc) func(http.Handler) http.Handler {
	if h.redis == nil || limit <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			now := h.now()
			bucket := now.UnixNano() / int64(window)
			redisKey := fmt.Sprintf("throttle:%s:%s:%d", scope, key(r), bucket)

			count, err := h.redis.Incr(ctx, redisKey).Result()
			if err != nil {
				h.logger.Warnw("Throttle check failed, allowing request", "scope", scope, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := h.redis.Expire(ctx, redisKey, window).Err(); err != nil {
					h.logger.Warnw("Failed to set throttle expiry", "key", redisKey, "error", err)
				}
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				resetIn := window - time.Duration(now.UnixNano()%int64(window))
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
				h.metrics.IncThrottled(scope)
				h.logger.Infow("Request throttled", "scope", scope, "path", r.URL.Path)
				h.errorResponse(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
