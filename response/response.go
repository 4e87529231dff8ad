package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码
const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeServerInternal = "INTERNAL_ERROR"
	ErrCodeTimeout        = "TIMEOUT"
)

// APIResponse 成功响应的统一结构
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    any    `json:"meta,omitempty"`
}

// ErrorBody 失败响应中的错误详情
type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// APIErrorResponse 失败响应的统一结构
type APIErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

// RespondSuccess 返回 200 成功响应
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusOK, APIResponse[T]{Success: true, Message: message, Data: data})
}

// RespondCreated 返回 201 成功响应
func RespondCreated[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusCreated, APIResponse[T]{Success: true, Message: message, Data: data})
}

// RespondSuccessWithMeta 返回带分页等元信息的 200 成功响应
func RespondSuccessWithMeta[T any](c *gin.Context, data T, meta any, message string) {
	c.JSON(http.StatusOK, APIResponse[T]{Success: true, Message: message, Data: data, Meta: meta})
}

// RespondError 返回失败响应，details 可选
func RespondError(c *gin.Context, status int, code string, message string, details ...any) {
	body := ErrorBody{Code: code}
	if len(details) == 1 {
		body.Details = details[0]
	} else if len(details) > 1 {
		body.Details = details
	}
	c.JSON(status, APIErrorResponse{Success: false, Message: message, Error: body})
}
