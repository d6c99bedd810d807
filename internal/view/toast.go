package view

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const toastCookie = "toast"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Toast 是下一次页面渲染时显示一次的提示
type Toast struct {
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}

// SetToast 写入提示，后写的覆盖先写的；kind 为空时按 info 显示
func SetToast(c *gin.Context, kind ToastKind, message string) {
	if kind == "" {
		kind = ToastInfo
	}
	data, _ := json.Marshal(Toast{Kind: kind, Message: message})
	c.Set(toastCookie, &Toast{Kind: kind, Message: message})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     toastCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func Success(c *gin.Context, message string) { SetToast(c, ToastSuccess, message) }

func Error(c *gin.Context, message string) { SetToast(c, ToastError, message) }

// PopToast 读取并清除提示。同一请求中刚写入的提示优先
func PopToast(c *gin.Context) *Toast {
	if v, ok := c.Get(toastCookie); ok {
		c.Set(toastCookie, nil)
		clearToast(c)
		if t, ok := v.(*Toast); ok && t != nil {
			return t
		}
		return nil
	}

	cookie, err := c.Request.Cookie(toastCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	clearToast(c)

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var t Toast
	if err := json.Unmarshal(data, &t); err != nil || t.Message == "" {
		return nil
	}
	if t.Kind == "" {
		t.Kind = ToastInfo
	}
	return &t
}

func clearToast(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     toastCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
