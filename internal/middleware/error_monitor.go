package middleware

import (
	"net/http"
	"sync"

	apperrors "community-frontend/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorMonitor 按错误码统计后端调用失败次数
type ErrorMonitor struct {
	errorCounts map[apperrors.Code]int
	mu          sync.RWMutex
}

func NewErrorMonitor() *ErrorMonitor {
	return &ErrorMonitor{
		errorCounts: make(map[apperrors.Code]int),
	}
}

func (m *ErrorMonitor) RecordError(err error) {
	code := apperrors.CodeOf(err)
	if _, ok := apperrors.AsValidation(err); ok {
		code = apperrors.CodeValidation
	}
	m.mu.Lock()
	m.errorCounts[code]++
	m.mu.Unlock()
}

func (m *ErrorMonitor) GetErrorCounts() map[apperrors.Code]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[apperrors.Code]int)
	for code, count := range m.errorCounts {
		counts[code] = count
	}
	return counts
}

func ErrorMonitorMiddleware(monitor *ErrorMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			monitor.RecordError(e.Err)
			if apperrors.IsNetwork(e.Err) {
				zap.L().Error("后端不可达",
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Error(e.Err))
			}
		}
	}
}

// ErrorCountsHandler 以 JSON 返回错误统计，仅在调试模式下注册
func ErrorCountsHandler(monitor *ErrorMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"errors": monitor.GetErrorCounts()})
	}
}
