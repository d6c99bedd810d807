package post

import (
	"net/http"
	"strconv"

	"community-frontend/internal/api"
	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/service"
	"community-frontend/internal/util"
	"community-frontend/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostHandler struct {
	postService service.PostServiceInterface
	pageSize    int
	maxUpload   int64
}

func NewPostHandler(postService service.PostServiceInterface, pageSize int, maxUpload int64) *PostHandler {
	return &PostHandler{
		postService: postService,
		pageSize:    pageSize,
		maxUpload:   maxUpload,
	}
}

// List 帖子列表
func (h *PostHandler) List(c *gin.Context) {
	sess := api.CurrentSession(c)
	pageNo, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pageNo < 1 {
		pageNo = 1
	}

	result, err := h.postService.List(c.Request.Context(), pageNo)
	if err != nil {
		apperrors.Record(c, err, zap.Int("page", pageNo))
	}

	page := view.NewPostListPage(view.NewPage(view.PagePosts, "게시글 목록", sess), result, pageNo, h.pageSize, sess.LoggedIn())
	view.Render(c, http.StatusOK, "posts.html", &page)
}

// Detail 帖子详情；refresh=1 表示刷新，不增加浏览数
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		api.Redirect(c, "/posts")
		return
	}

	var draft model.CommentDraft
	if cid, err := strconv.Atoi(c.Query("edit_comment")); err == nil && cid > 0 {
		draft.CommentID = cid
	}
	h.RenderDetail(c, id, draft, c.Query("refresh") != "1")
}

// RenderDetail 读取帖子并渲染详情页，失败时回到列表
func (h *PostHandler) RenderDetail(c *gin.Context, id int, draft model.CommentDraft, countView bool) {
	sess := api.CurrentSession(c)
	post, err := h.postService.View(c.Request.Context(), id, countView)
	if err != nil {
		apperrors.Record(c, err, zap.Int("post_id", id))
		view.Error(c, service.MsgLoadPostFailed)
		api.Redirect(c, "/posts")
		return
	}

	page := view.NewPostDetailPage(view.NewPage(view.PagePostDetail, post.Title, sess), post, sess, draft)
	view.Render(c, http.StatusOK, "detail.html", &page)
}

// Sentiment 情感分析片段，由详情页单独加载
func (h *PostHandler) Sentiment(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		view.RenderFragment(c, "sentiment.html", view.NewSentimentFragment(nil))
		return
	}

	result, err := h.postService.AnalyzeSentiment(c.Request.Context(), id)
	if err != nil {
		apperrors.Record(c, err, zap.Int("post_id", id))
	}
	view.RenderFragment(c, "sentiment.html", view.NewSentimentFragment(result))
}

// NewForm 新建帖子
func (h *PostHandler) NewForm(c *gin.Context) {
	h.renderForm(c, model.PostDraft{}, "", nil)
}

// EditForm 用已有帖子填充表单，保留图片分类
func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		api.Redirect(c, "/posts")
		return
	}

	draft, err := h.postService.Load(c.Request.Context(), id)
	if err != nil {
		apperrors.Record(c, err, zap.Int("post_id", id))
		view.Error(c, service.MsgLoadPostFailed)
		api.Redirect(c, "/posts")
		return
	}

	var classification *view.Classification
	if draft.ImageURL != "" {
		cls := view.ClassificationOf(draft.ImageClass)
		classification = &cls
	}
	h.renderForm(c, draft, "", classification)
}

// Submit 保存帖子
func (h *PostHandler) Submit(c *gin.Context) {
	var draft model.PostDraft
	_ = c.ShouldBind(&draft)

	toast, err := h.postService.Submit(c.Request.Context(), draft)
	if err != nil {
		apperrors.Record(c, err, zap.Int("post_id", draft.PostID))
		view.Error(c, apperrors.MessageOf(err, apperrors.MsgPostSaveFail))
		h.renderForm(c, draft, "", nil)
		return
	}

	view.Success(c, toast)
	api.Redirect(c, "/posts")
}

// UploadImage 上传帖子图片并显示分类结果
func (h *PostHandler) UploadImage(c *gin.Context) {
	var draft model.PostDraft
	_ = c.ShouldBind(&draft)

	file, err := api.FormFile(c, h.maxUpload)
	if file == nil && err == nil {
		h.renderForm(c, draft, "", nil)
		return
	}
	if err != nil {
		draft.ImageURL, draft.ImageClass = "", ""
		view.Error(c, "이미지 업로드 실패")
		h.renderForm(c, draft, "", nil)
		return
	}

	result, err := h.postService.UploadImage(c.Request.Context(), draft, *file)
	if err != nil {
		apperrors.Record(c, err)
		view.Error(c, apperrors.MessageOf(err, "이미지 업로드 실패"))
		h.renderForm(c, result.Draft, "", nil)
		return
	}

	classification := view.PredictionClassification(result.Prediction)
	view.Success(c, result.Toast)
	h.renderForm(c, result.Draft, util.PreviewDataURL(file.Data), &classification)
}

func (h *PostHandler) renderForm(c *gin.Context, draft model.PostDraft, preview string, classification *view.Classification) {
	page := view.PostFormPage{
		Page:           view.NewPage(view.PageCreatePost, "게시글 작성", api.CurrentSession(c)),
		Draft:          draft,
		Preview:        preview,
		Classification: classification,
	}
	page.Title = page.Heading()
	view.Render(c, http.StatusOK, "post_form.html", &page)
}

// Delete GET 显示确认框，POST 确认后删除
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		api.Redirect(c, "/posts")
		return
	}

	if c.Request.Method != http.MethodPost || !view.Confirmed(c) {
		page := view.ModalPage{
			Page:          view.NewPage(view.PagePostDetail, "게시글 삭제", api.CurrentSession(c)),
			Heading:       "게시글을 삭제하시겠습니까?",
			Message:       "삭제된 내용은 복구 할 수 없습니다.",
			ConfirmAction: "/posts/" + strconv.Itoa(id) + "/delete",
			CancelURL:     "/posts/" + strconv.Itoa(id) + "?refresh=1",
		}
		view.Render(c, http.StatusOK, "modal.html", &page)
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		apperrors.Record(c, err, zap.Int("post_id", id))
		view.Error(c, apperrors.MessageOf(err, "게시글 삭제 실패"))
		api.Redirect(c, "/posts/%d?refresh=1", id)
		return
	}

	util.Logger.Info("帖子已删除", zap.Int("post_id", id))
	view.Success(c, "게시글이 삭제되었습니다")
	api.Redirect(c, "/posts")
}

// Like 切换点赞，之后刷新详情页显示服务器上的计数
func (h *PostHandler) Like(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		api.Redirect(c, "/posts")
		return
	}

	toast, err := h.postService.ToggleLike(c.Request.Context(), api.CurrentSession(c), id)
	if err != nil {
		apperrors.Record(c, err, zap.Int("post_id", id))
		view.Error(c, apperrors.MessageOf(err, "좋아요 처리 실패"))
	} else {
		view.Success(c, toast)
	}
	api.Redirect(c, "/posts/%d?refresh=1", id)
}
