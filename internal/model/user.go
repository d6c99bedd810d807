package model

import "strconv"

// Session 是客户端持久保存的登录用户信息，创建后不再与服务器校验
type Session struct {
	UserID          string
	Nickname        string
	ProfileImageURL string
}

// LoggedIn 判断是否存在登录会话
func (s Session) LoggedIn() bool {
	return s.UserID != ""
}

// Owns 判断当前用户是否为作者；只用于显示/隐藏控件，权限由服务器保证
func (s Session) Owns(authorID int) bool {
	id, err := strconv.Atoi(s.UserID)
	return err == nil && id == authorID
}

// AuthUser 是登录响应中的用户数据
type AuthUser struct {
	UserID          int    `json:"user_id"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

// Session 把登录响应转换成会话
func (u AuthUser) Session() Session {
	return Session{
		UserID:          strconv.Itoa(u.UserID),
		Nickname:        u.Nickname,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// AuthResult 是登录/注册接口的结果；Message 为服务器返回的语义码
type AuthResult struct {
	Message string
	User    *AuthUser
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordCheck   string `json:"password_check"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

type ProfileUpload struct {
	ProfileImageURL string `json:"profile_image_url"`
}

// Upload 是待转发到后端的文件
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
