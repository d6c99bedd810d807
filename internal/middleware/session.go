package middleware

import (
	"community-frontend/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware 读取客户端会话放入请求 context，API 客户端据此附加用户头
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Load(c.Request)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		if sess.LoggedIn() {
			c.Set(session.KeyUserID, sess.UserID)
		}
		c.Next()
	}
}
