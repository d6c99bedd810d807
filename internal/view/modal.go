package view

import "github.com/gin-gonic/gin"

// ModalPage 是需要确认的操作页；确认时以 confirm=yes 提交到 ConfirmAction
type ModalPage struct {
	Page
	Heading       string
	Message       string
	ConfirmAction string
	CancelURL     string
}

// Confirmed 判断请求是否带有确认
func Confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}
