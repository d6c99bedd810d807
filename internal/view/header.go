package view

import "community-frontend/internal/model"

// PageName 对应应用中的各个页面
type PageName string

const (
	PageLogin      PageName = "login"
	PageSignup     PageName = "signup"
	PagePosts      PageName = "posts"
	PagePostDetail PageName = "post-detail"
	PageCreatePost PageName = "create-post"
)

// Header 是页面顶部栏的显示状态
type Header struct {
	ShowBack        bool
	BackURL         string
	ShowProfile     bool
	Nickname        string
	ProfileImageURL string
}

// HeaderFor 根据当前页面和会话计算顶部栏
func HeaderFor(page PageName, sess model.Session) Header {
	var h Header
	switch page {
	case PagePosts:
		h.ShowProfile = true
	case PagePostDetail, PageCreatePost:
		h.ShowProfile = true
		h.ShowBack = true
		h.BackURL = "/posts"
	}

	if !sess.LoggedIn() {
		h.ShowProfile = false
	}
	if h.ShowProfile {
		h.Nickname = sess.Nickname
		h.ProfileImageURL = sess.ProfileImageURL
	}
	return h
}
