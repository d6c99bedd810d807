package middleware

import (
	"net/http"
	"runtime/debug"

	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternal = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// WantsJSON 请求的 Accept 优先 JSON 时返回 true
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// 记录堆栈信息
				stack := string(debug.Stack())
				zap.L().Error("发生panic",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("stack", stack))

				if WantsJSON(c) {
					apperrors.HandleError(c, apperrors.New(apperrors.CodeInternal, msgInternal))
					c.Abort()
					return
				}
				page := view.ErrorPage{
					Page:    view.NewPage(view.PageLogin, "오류", model.Session{}),
					Status:  http.StatusInternalServerError,
					Message: msgInternal,
				}
				view.Render(c, http.StatusInternalServerError, "error.html", &page)
				c.Abort()
			}
		}()
		c.Next()
	}
}
