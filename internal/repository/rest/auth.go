package rest

import (
	"context"
	"net/http"

	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"
)

type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client}
}

var _ interfaces.AuthRepository = (*AuthRepository)(nil)

func (r *AuthRepository) Login(ctx context.Context, in model.LoginInput) (*model.AuthResult, error) {
	return r.authenticate(ctx, "/auth/login", in)
}

func (r *AuthRepository) Signup(ctx context.Context, in model.SignupInput) (*model.AuthResult, error) {
	return r.authenticate(ctx, "/auth/signup", in)
}

// authenticate 登录和注册共用：成功与否由调用方根据 Message 判断
func (r *AuthRepository) authenticate(ctx context.Context, path string, body any) (*model.AuthResult, error) {
	res := r.client.Do(ctx, http.MethodPost, path, body)
	if !res.OK {
		return nil, res.Err()
	}
	out := &model.AuthResult{Message: res.Message}
	var user model.AuthUser
	if err := res.Decode(&user); err == nil {
		out.User = &user
	}
	return out, nil
}

func (r *AuthRepository) UploadProfileImage(ctx context.Context, file model.Upload) (*model.ProfileUpload, error) {
	res := r.client.Do(ctx, http.MethodPost, "/users/profile/upload", &file)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.ProfileUpload
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AuthRepository) DeleteAccount(ctx context.Context) error {
	res := r.client.Do(ctx, http.MethodDelete, "/users/profile", nil)
	if !res.OK {
		return res.Err()
	}
	return nil
}
