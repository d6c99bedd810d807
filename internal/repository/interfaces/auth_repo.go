package interfaces

import (
	"context"

	"community-frontend/internal/model"
)

// AuthRepository 定义了认证相关的后端接口
type AuthRepository interface {
	Login(ctx context.Context, in model.LoginInput) (*model.AuthResult, error)
	Signup(ctx context.Context, in model.SignupInput) (*model.AuthResult, error)
	UploadProfileImage(ctx context.Context, file model.Upload) (*model.ProfileUpload, error)
	DeleteAccount(ctx context.Context) error
}
