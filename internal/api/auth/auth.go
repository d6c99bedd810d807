package auth

import (
	"net/http"

	"community-frontend/internal/api"
	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/service"
	"community-frontend/internal/session"
	"community-frontend/internal/util"
	"community-frontend/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 处理登录、注册、登出和注销
type AuthHandler struct {
	authService service.AuthServiceInterface
	store       session.Store
	maxUpload   int64
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(authService service.AuthServiceInterface, store session.Store, maxUpload int64) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		maxUpload:   maxUpload,
	}
}

// LoginPage 显示登录页
func (h *AuthHandler) LoginPage(c *gin.Context) {
	page := view.LoginPage{Page: view.NewPage(view.PageLogin, "로그인", api.CurrentSession(c))}
	view.Render(c, http.StatusOK, "login.html", &page)
}

// Login 处理登录表单
func (h *AuthHandler) Login(c *gin.Context) {
	var form struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}
	_ = c.ShouldBind(&form)

	sess, err := h.authService.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		apperrors.Record(c, err)
		page := view.LoginPage{
			Page:   view.NewPage(view.PageLogin, "로그인", model.Session{}),
			Email:  form.Email,
			Helper: apperrors.MessageOf(err, apperrors.MsgLoginFailed),
		}
		view.Render(c, http.StatusOK, "login.html", &page)
		return
	}

	h.store.Save(c.Writer, sess)
	util.Logger.Info("用户登录", zap.String("user_id", sess.UserID))
	view.Success(c, "로그인 성공!")
	api.Redirect(c, "/posts")
}

// SignupPage 显示注册页
func (h *AuthHandler) SignupPage(c *gin.Context) {
	h.renderSignup(c, model.SignupDraft{}, "", nil)
}

// Signup 处理注册表单
func (h *AuthHandler) Signup(c *gin.Context) {
	var draft model.SignupDraft
	_ = c.ShouldBind(&draft)

	err := h.authService.Signup(c.Request.Context(), draft)
	if err == nil {
		view.Success(c, "회원가입 성공! 로그인해주세요")
		api.Redirect(c, "/login")
		return
	}

	if verr, ok := apperrors.AsValidation(err); ok {
		h.renderSignup(c, draft, "", verr.Fields)
		return
	}
	apperrors.Record(c, err)
	view.Error(c, apperrors.MessageOf(err, apperrors.MsgSignupFailed))
	h.renderSignup(c, draft, "", nil)
}

// UploadProfileImage 上传头像；预览直接由上传内容生成
func (h *AuthHandler) UploadProfileImage(c *gin.Context) {
	var draft model.SignupDraft
	_ = c.ShouldBind(&draft)

	file, err := api.FormFile(c, h.maxUpload)
	if file == nil && err == nil {
		h.renderSignup(c, draft, "", nil)
		return
	}
	if err == nil {
		draft.ProfileImageURL, err = h.authService.UploadProfileImage(c.Request.Context(), *file)
	}
	if err != nil {
		apperrors.Record(c, err)
		draft.ProfileImageURL = ""
		view.Error(c, "프로필 이미지 업로드 실패")
		h.renderSignup(c, draft, "", nil)
		return
	}

	view.Success(c, "프로필 이미지 업로드 완료")
	h.renderSignup(c, draft, util.PreviewDataURL(file.Data), nil)
}

func (h *AuthHandler) renderSignup(c *gin.Context, draft model.SignupDraft, preview string, helpers map[apperrors.Field]string) {
	// 密码不回填
	draft.Password = ""
	draft.PasswordCheck = ""
	// 已上传的头像继续显示
	if preview == "" {
		preview = draft.ProfileImageURL
	}
	page := view.SignupPage{
		Page:    view.NewPage(view.PageSignup, "회원가입", api.CurrentSession(c)),
		Draft:   draft,
		Preview: preview,
		Helpers: helpers,
	}
	view.Render(c, http.StatusOK, "signup.html", &page)
}

// Logout 只清除本地会话，不调用服务器
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c.Writer)
	view.Success(c, "로그아웃 되었습니다")
	api.Redirect(c, "/login")
}

// DeleteAccount GET 显示确认框，POST 确认后注销账号
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	sess := api.CurrentSession(c)
	if !sess.LoggedIn() {
		view.Error(c, service.MsgLoginRequired)
		api.Redirect(c, "/login")
		return
	}

	if c.Request.Method != http.MethodPost || !view.Confirmed(c) {
		page := view.ModalPage{
			Page:          view.NewPage(view.PagePosts, "회원 탈퇴", sess),
			Heading:       "회원 탈퇴 하시겠습니까?",
			Message:       "작성된 게시글과 댓글은 삭제됩니다.",
			ConfirmAction: "/account/delete",
			CancelURL:     "/posts",
		}
		view.Render(c, http.StatusOK, "modal.html", &page)
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context()); err != nil {
		apperrors.Record(c, err)
		view.Error(c, apperrors.MessageOf(err, "회원 탈퇴 실패"))
		api.Redirect(c, "/posts")
		return
	}

	h.store.Clear(c.Writer)
	util.Logger.Info("用户已注销", zap.String("user_id", sess.UserID))
	view.Success(c, "회원 탈퇴가 완료되었습니다")
	api.Redirect(c, "/login")
}
