package session

import (
	"context"
	"net/http"

	"community-frontend/internal/model"
)

// 客户端持久保存的三个键
const (
	KeyUserID          = "user_id"
	KeyNickname        = "nickname"
	KeyProfileImageURL = "profile_image_url"
)

// Store 在客户端持久存储中读写会话
type Store interface {
	Load(r *http.Request) model.Session
	Save(w http.ResponseWriter, s model.Session)
	Clear(w http.ResponseWriter)
}

// Options 是会话 cookie 的公共属性
type Options struct {
	MaxAge int
	Secure bool
}

func (o Options) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

type contextKey struct{ name string }

var sessionCtxKey = &contextKey{"session"}

// NewContext 把会话放入 context，API 客户端据此附加 X-User-Id
func NewContext(ctx context.Context, s model.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// FromContext 读取 context 中的会话，没有时返回空会话
func FromContext(ctx context.Context) model.Session {
	s, _ := ctx.Value(sessionCtxKey).(model.Session)
	return s
}
