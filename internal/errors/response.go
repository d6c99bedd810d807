package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 定义 JSON 错误响应结构，请求要求 JSON 时使用
type ErrorResponse struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// StatusOf 返回错误对应的 HTTP 状态码；后端状态未知时按 502 处理
func StatusOf(err error) int {
	if _, ok := AsValidation(err); ok {
		return http.StatusUnprocessableEntity
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		switch {
		case appErr.Code == CodeInternal:
			return http.StatusInternalServerError
		case appErr.Code == CodeLoginRequired:
			return http.StatusUnauthorized
		case appErr.Code == CodeValidation:
			return http.StatusUnprocessableEntity
		case appErr.Code == CodeNetworkError || appErr.Code == CodeInvalidResponse:
			return http.StatusBadGateway
		case appErr.Status >= 400:
			return appErr.Status
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Record 把错误挂到请求上，供错误监控中间件统计，并记录日志
func Record(c *gin.Context, err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	fields = append(fields,
		zap.String("code", string(CodeOf(err))),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err))
	zap.L().Warn("请求后端失败", fields...)
}

// HandleError 以 JSON 形式返回错误
func HandleError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Code:    CodeOf(err),
		Message: MessageOf(err, "Internal Server Error"),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(StatusOf(err), resp)
}
