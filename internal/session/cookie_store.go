package session

import (
	"net/http"
	"net/url"

	"community-frontend/internal/model"
)

// CookieStore 用三个 cookie 分别保存 user_id、nickname、profile_image_url
type CookieStore struct {
	opts Options
}

func NewCookieStore(opts Options) *CookieStore {
	return &CookieStore{opts: opts}
}

func (s *CookieStore) Load(r *http.Request) model.Session {
	return model.Session{
		UserID:          readCookie(r, KeyUserID),
		Nickname:        readCookie(r, KeyNickname),
		ProfileImageURL: readCookie(r, KeyProfileImageURL),
	}
}

// Save 与 setCurrentUser 一致：头像地址为空时不写入
func (s *CookieStore) Save(w http.ResponseWriter, sess model.Session) {
	http.SetCookie(w, s.opts.cookie(KeyUserID, url.QueryEscape(sess.UserID), s.opts.MaxAge))
	http.SetCookie(w, s.opts.cookie(KeyNickname, url.QueryEscape(sess.Nickname), s.opts.MaxAge))
	if sess.ProfileImageURL != "" {
		http.SetCookie(w, s.opts.cookie(KeyProfileImageURL, url.QueryEscape(sess.ProfileImageURL), s.opts.MaxAge))
	}
}

func (s *CookieStore) Clear(w http.ResponseWriter) {
	for _, key := range []string{KeyUserID, KeyNickname, KeyProfileImageURL} {
		http.SetCookie(w, s.opts.cookie(key, "", -1))
	}
}

func readCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}
