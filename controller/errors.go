package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/response"
)

// fieldError 是绑定失败时 details 中的单条字段错误
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// respondBindError 把 gin 绑定/校验失败统一转成 400 VALIDATION_ERROR
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeValidation, "请求参数校验失败", details)
		return
	}
	response.RespondError(c, http.StatusBadRequest, response.ErrCodeValidation, "请求参数格式错误: "+err.Error())
}

// respondServiceError 按哨兵错误映射 HTTP 状态码，未识别的错误一律视为 500
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, myErrors.ErrValidation):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
	case errors.Is(err, myErrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeNotFound, err.Error())
	case errors.Is(err, myErrors.ErrConflict):
		response.RespondError(c, http.StatusConflict, response.ErrCodeConflict, err.Error())
	default:
		_ = c.Error(err)
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallback)
	}
}
