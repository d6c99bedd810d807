package service

import (
	"context"
	stderrors "errors"
	"strings"

	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"
	"community-frontend/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type AuthService struct {
	repo interfaces.AuthRepository
}

func NewAuthService(repo interfaces.AuthRepository) *AuthService {
	return &AuthService{repo}
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Signup(ctx context.Context, draft model.SignupDraft) error
	UploadProfileImage(ctx context.Context, file model.Upload) (string, error)
	DeleteAccount(ctx context.Context) error
}

// 确保 AuthService 实现了 AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// Login 校验输入后调用登录接口；返回错误的 Message 是登录表单下方的提示文本
func (s *AuthService) Login(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.Session{}, apperrors.New(apperrors.CodeEmailRequired, apperrors.LoginMessage(apperrors.CodeEmailRequired))
	}
	if password == "" {
		return model.Session{}, apperrors.New(apperrors.CodePasswordRequired, apperrors.LoginMessage(apperrors.CodePasswordRequired))
	}

	result, err := s.repo.Login(ctx, model.LoginInput{Email: email, Password: password})
	if err != nil {
		code := apperrors.CodeOf(err)
		util.Logger.Info("登录失败", zap.String("code", string(code)))
		return model.Session{}, apperrors.Wrap(code, apperrors.LoginMessage(code), err)
	}
	if apperrors.Code(result.Message) != apperrors.CodeLoginSuccess {
		code := apperrors.Code(result.Message)
		return model.Session{}, apperrors.New(code, apperrors.LoginMessage(code))
	}
	if result.User == nil {
		return model.Session{}, apperrors.New(apperrors.CodeInvalidResponse, apperrors.MsgLoginFailed)
	}

	return result.User.Session(), nil
}

// Signup 一次性校验全部字段，失败时返回 *errors.ValidationError；
// 无法对应到字段的失败返回 *errors.AppError，其 Message 用于弹出提示
func (s *AuthService) Signup(ctx context.Context, draft model.SignupDraft) error {
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Nickname = strings.TrimSpace(draft.Nickname)

	if verr := validateSignup(draft); !verr.Empty() {
		return verr
	}

	result, err := s.repo.Signup(ctx, model.SignupInput{
		Email:           draft.Email,
		Password:        draft.Password,
		PasswordCheck:   draft.PasswordCheck,
		Nickname:        draft.Nickname,
		ProfileImageURL: draft.ProfileImageURL,
	})
	if err != nil {
		return routeSignupFailure(apperrors.CodeOf(err), err)
	}
	if apperrors.Code(result.Message) != apperrors.CodeRegisterSuccess {
		return routeSignupFailure(apperrors.Code(result.Message), nil)
	}

	util.Logger.Info("注册成功", zap.String("nickname", draft.Nickname))
	return nil
}

func routeSignupFailure(code apperrors.Code, cause error) error {
	field, msg := apperrors.SignupRoute(code)
	if field == apperrors.FieldNone {
		return apperrors.Wrap(code, msg, cause)
	}
	verr := apperrors.NewValidationError()
	verr.Set(field, msg)
	return verr
}

// validateSignup 按字段收集所有校验失败
func validateSignup(draft model.SignupDraft) *apperrors.ValidationError {
	verr := apperrors.NewValidationError()

	err := util.Validate.Struct(draft)
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return verr
	}

	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Email":
			verr.Set(apperrors.FieldEmail, apperrors.SignupMessage(apperrors.CodeEmailRequired))
		case "Password":
			verr.Set(apperrors.FieldPassword, apperrors.SignupMessage(apperrors.CodePasswordRequired))
		case "PasswordCheck":
			if fe.Tag() == "required" {
				verr.Set(apperrors.FieldPasswordCheck, apperrors.SignupMessage(apperrors.CodePasswordCheckRequired))
			} else if draft.Password != "" {
				// 两次密码都填写了才提示不一致
				verr.Set(apperrors.FieldPasswordCheck, apperrors.SignupMessage(apperrors.CodePasswordMismatch))
			}
		case "Nickname":
			verr.Set(apperrors.FieldNickname, apperrors.SignupMessage(apperrors.CodeNicknameRequired))
		case "ProfileImageURL":
			verr.Set(apperrors.FieldProfile, apperrors.SignupMessage(apperrors.CodeProfileImageURLMissing))
		}
	}
	return verr
}

// UploadProfileImage 返回服务器保存后的头像地址
func (s *AuthService) UploadProfileImage(ctx context.Context, file model.Upload) (string, error) {
	out, err := s.repo.UploadProfileImage(ctx, file)
	if err != nil {
		util.Logger.Warn("上传头像失败", zap.String("filename", file.Filename), zap.Error(err))
		return "", apperrors.Wrap(apperrors.CodeUnknown, "프로필 이미지 업로드 실패", err)
	}
	if out.ProfileImageURL == "" {
		return "", apperrors.New(apperrors.CodeInvalidResponse, "프로필 이미지 업로드 실패")
	}
	return out.ProfileImageURL, nil
}

func (s *AuthService) DeleteAccount(ctx context.Context) error {
	if err := s.repo.DeleteAccount(ctx); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "회원 탈퇴 실패", err)
	}
	return nil
}
