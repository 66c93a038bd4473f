package middleware

import (
	"fmt"
	"net/http"
	"time"

	"bidloop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
)

// Sliding-window counter evaluated atomically in Redis.
// KEYS[1] = limiter key, ARGV = now, window start, window seconds, member, limit.
// Returns the request count inside the window, or -1 when over the limit.
const luaRateLimit = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowSec = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '0', windowStart)

local count = redis.call('ZCARD', key)

if count < tonumber(ARGV[5]) then
  redis.call('ZADD', key, now, member)
  redis.call('EXPIRE', key, windowSec)
  return count + 1
else
  return -1
end
`

// BidRateLimit throttles bid submissions per authenticated user. Requests
// without an authenticated user fall back to per-IP keys. Redis failures
// fail open.
func BidRateLimit(rdb *rd.Client, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var key string
		if userID, ok := GetUserID(c); ok {
			key = fmt.Sprintf("rate_limit:bids:user:%s", userID)
		} else {
			key = fmt.Sprintf("rate_limit:bids:ip:%s", c.ClientIP())
		}

		now := time.Now().Unix()
		windowSec := int64(cfg.BidWindow.Seconds())
		windowStart := now - windowSec
		member := fmt.Sprintf("%d-%d", now, time.Now().UnixNano())

		res, err := rdb.Eval(c.Request.Context(), luaRateLimit, []string{key},
			now, windowStart, windowSec, member, cfg.BidLimit).Int()
		if err != nil {
			c.Next()
			return
		}

		if res < 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many bids, slow down",
			})
			return
		}
		c.Next()
	}
}
