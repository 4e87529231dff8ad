package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/response"
)

// ErrorHandlingMiddleware 捕获后续处理链中的 panic，记录堆栈并返回 500 响应
func ErrorHandlingMiddleware(logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("请求处理发生 panic",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.ByteString("stack", debug.Stack()),
				)
				if !c.Writer.Written() {
					response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务器内部错误")
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
