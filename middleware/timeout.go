package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/response"
)

// RequestTimeoutMiddleware 给请求上下文加上截止时间。
// 处理函数需自行响应 ctx.Done()，超时且尚未写出响应时补写 504。
func RequestTimeoutMiddleware(logger *core.ZapLogger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			logger.Warn("请求处理超时",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", timeout),
			)
			response.RespondError(c, http.StatusGatewayTimeout, response.ErrCodeTimeout, "请求处理超时")
			c.Abort()
		}
	}
}
