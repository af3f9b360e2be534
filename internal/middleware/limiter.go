package middleware

import (
	"github.com/haierkeys/smart-note-api/pkg/app"
	"github.com/haierkeys/smart-note-api/pkg/code"
	"github.com/haierkeys/smart-note-api/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter creates rate limiting middleware (supports dependency injection)
// RateLimiter 创建限流中间件（支持依赖注入）
// 未注入限流器时直接放行
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	if l == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				response := app.NewResponse(c)
				response.ToResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
