package session

import (
	"errors"
	"net/http"

	"community-frontend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenCookie 是签名会话令牌的 cookie 名
const TokenCookie = "session"

type sessionClaims struct {
	UserID          string `json:"user_id"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}

// TokenStore 把会话三个字段签名后保存在一个 cookie 中，防止客户端篡改
type TokenStore struct {
	secret []byte
	opts   Options
}

func NewTokenStore(secret string, opts Options) *TokenStore {
	return &TokenStore{secret: []byte(secret), opts: opts}
}

func (s *TokenStore) Load(r *http.Request) model.Session {
	c, err := r.Cookie(TokenCookie)
	if err != nil || c.Value == "" {
		return model.Session{}
	}
	sess, err := s.parse(c.Value)
	if err != nil {
		zap.L().Debug("会话令牌无效", zap.Error(err))
		return model.Session{}
	}
	return sess
}

func (s *TokenStore) Save(w http.ResponseWriter, sess model.Session) {
	token, err := s.sign(sess)
	if err != nil {
		zap.L().Error("签名会话令牌失败", zap.Error(err))
		return
	}
	http.SetCookie(w, s.opts.cookie(TokenCookie, token, s.opts.MaxAge))
}

func (s *TokenStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.opts.cookie(TokenCookie, "", -1))
}

func (s *TokenStore) sign(sess model.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID:          sess.UserID,
		Nickname:        sess.Nickname,
		ProfileImageURL: sess.ProfileImageURL,
	})
	return token.SignedString(s.secret)
}

func (s *TokenStore) parse(tokenString string) (model.Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Session{}, err
	}
	if !token.Valid {
		return model.Session{}, errors.New("无效的令牌")
	}
	return model.Session{
		UserID:          claims.UserID,
		Nickname:        claims.Nickname,
		ProfileImageURL: claims.ProfileImageURL,
	}, nil
}
