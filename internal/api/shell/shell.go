package shell

import (
	"net/http"

	"community-frontend/internal/api"

	"github.com/gin-gonic/gin"
)

// Root 根据登录状态进入列表或登录页
func Root(c *gin.Context) {
	if api.CurrentSession(c).LoggedIn() {
		c.Redirect(http.StatusFound, "/posts")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// NoRoute 未知地址回到首页
func NoRoute(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
