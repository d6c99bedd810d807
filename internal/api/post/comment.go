package post

import (
	"net/http"
	"strconv"

	"community-frontend/internal/api"
	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/service"
	"community-frontend/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommentHandler 评论的新建、修改、删除；成功后整页重新加载详情
type CommentHandler struct {
	commentService service.CommentServiceInterface
	posts          *PostHandler
}

func NewCommentHandler(commentService service.CommentServiceInterface, posts *PostHandler) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		posts:          posts,
	}
}

// Submit 新建或修改评论
func (h *CommentHandler) Submit(c *gin.Context) {
	postID, ok := api.ParamID(c, "id")
	if !ok {
		api.Redirect(c, "/posts")
		return
	}

	var draft model.CommentDraft
	_ = c.ShouldBind(&draft)

	toast, err := h.commentService.Submit(c.Request.Context(), api.CurrentSession(c), postID, draft)
	if err != nil {
		apperrors.Record(c, err, zap.Int("post_id", postID))
		view.Error(c, apperrors.MessageOf(err, "댓글 저장 실패"))
		// 保留输入内容，不增加浏览数
		h.posts.RenderDetail(c, postID, draft, false)
		return
	}

	view.Success(c, toast)
	api.Redirect(c, "/posts/%d", postID)
}

// Delete GET 显示确认框，POST 确认后删除
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, ok := api.ParamID(c, "id")
	if !ok {
		api.Redirect(c, "/posts")
		return
	}
	commentID, ok := api.ParamID(c, "cid")
	if !ok {
		api.Redirect(c, "/posts/%d?refresh=1", postID)
		return
	}

	if c.Request.Method != http.MethodPost || !view.Confirmed(c) {
		page := view.ModalPage{
			Page:          view.NewPage(view.PagePostDetail, "댓글 삭제", api.CurrentSession(c)),
			Heading:       "댓글을 삭제하시겠습니까?",
			Message:       "삭제된 내용은 복구 할 수 없습니다.",
			ConfirmAction: "/posts/" + strconv.Itoa(postID) + "/comments/" + strconv.Itoa(commentID) + "/delete",
			CancelURL:     "/posts/" + strconv.Itoa(postID) + "?refresh=1",
		}
		view.Render(c, http.StatusOK, "modal.html", &page)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), postID, commentID); err != nil {
		apperrors.Record(c, err, zap.Int("post_id", postID), zap.Int("comment_id", commentID))
		view.Error(c, apperrors.MessageOf(err, "댓글 삭제 실패"))
		api.Redirect(c, "/posts/%d?refresh=1", postID)
		return
	}

	view.Success(c, "댓글이 삭제되었습니다")
	api.Redirect(c, "/posts/%d", postID)
}
