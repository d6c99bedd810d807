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

// 帖子相关的提示文本
const (
	MsgLoadPostFailed = "게시글을 불러오는데 실패했습니다"
	MsgLoginRequired  = "로그인이 필요합니다"
)

type PostService struct {
	posts     interfaces.PostRepository
	comments  interfaces.CommentRepository
	sentiment interfaces.SentimentRepository
	pageSize  int
}

func NewPostService(posts interfaces.PostRepository, comments interfaces.CommentRepository, sentiment interfaces.SentimentRepository, pageSize int) *PostService {
	return &PostService{
		posts:     posts,
		comments:  comments,
		sentiment: sentiment,
		pageSize:  pageSize,
	}
}

type PostServiceInterface interface {
	List(ctx context.Context, page int) (*model.PostPage, error)
	View(ctx context.Context, id int, countView bool) (*model.Post, error)
	Load(ctx context.Context, id int) (model.PostDraft, error)
	Submit(ctx context.Context, draft model.PostDraft) (string, error)
	Delete(ctx context.Context, id int) error
	ToggleLike(ctx context.Context, sess model.Session, id int) (string, error)
	UploadImage(ctx context.Context, draft model.PostDraft, file model.Upload) (ImageResult, error)
	AnalyzeSentiment(ctx context.Context, id int) (*model.Sentiment, error)
}

var _ PostServiceInterface = (*PostService)(nil)

// ImageResult 是图片上传后的表单状态
type ImageResult struct {
	Draft      model.PostDraft
	Prediction *model.Prediction
	Toast      string
}

// List 按固定页大小获取帖子列表，失败时不重试
func (s *PostService) List(ctx context.Context, page int) (*model.PostPage, error) {
	if page < 1 {
		page = 1
	}
	out, err := s.posts.ListPosts(ctx, page, s.pageSize)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "게시글을 불러오는데 실패했습니다.", err)
	}
	return out, nil
}

// View 先增加浏览数（结果忽略），再读取帖子详情
func (s *PostService) View(ctx context.Context, id int, countView bool) (*model.Post, error) {
	if countView {
		if err := s.posts.IncrementViewCount(ctx, id); err != nil {
			util.Logger.Debug("增加浏览数失败", util.Int("post_id", id), util.Error(err))
		}
	}

	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, MsgLoadPostFailed, err)
	}

	if post.Comments == nil {
		comments, err := s.comments.ListComments(ctx, id)
		if err != nil {
			util.Logger.Warn("获取评论失败", zap.Int("post_id", id), zap.Error(err))
		}
		post.Comments = comments
	}
	return post, nil
}

// Load 读取帖子用于修改表单
func (s *PostService) Load(ctx context.Context, id int) (model.PostDraft, error) {
	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return model.PostDraft{}, apperrors.Wrap(apperrors.CodeUnknown, MsgLoadPostFailed, err)
	}
	return model.DraftFromPost(post), nil
}

// Submit 保存帖子，返回成功提示
func (s *PostService) Submit(ctx context.Context, draft model.PostDraft) (string, error) {
	if err := checkBlank(draft, postBlankMessages); err != nil {
		return "", err
	}
	title := strings.TrimSpace(draft.Title)
	content := strings.TrimSpace(draft.Content)

	in := model.NewPostInput(title, content, draft.ImageURL, draft.ImageClass)

	if draft.Editing() {
		if err := s.posts.UpdatePost(ctx, draft.PostID, in); err != nil {
			return "", postSaveError(err)
		}
		return "게시글이 수정되었습니다", nil
	}

	ref, err := s.posts.CreatePost(ctx, in)
	if err != nil {
		return "", postSaveError(err)
	}
	util.Logger.Info("帖子已创建", zap.Int("post_id", ref.ID))
	return "게시글이 작성되었습니다", nil
}

var postBlankMessages = map[string]string{
	"Title":   "제목을 입력해주세요",
	"Content": "내용을 입력해주세요",
}

// checkBlank 用 notblank 规则校验表单，返回第一个失败字段对应的提示
func checkBlank(form any, messages map[string]string) error {
	err := util.Validate.Struct(form)
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil
	}
	return apperrors.New(apperrors.CodeValidation, messages[fieldErrs[0].StructField()])
}

func postSaveError(err error) error {
	code := apperrors.CodeOf(err)
	return apperrors.Wrap(code, apperrors.PostMessage(code), err)
}

func (s *PostService) Delete(ctx context.Context, id int) error {
	if err := s.posts.DeletePost(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "게시글 삭제 실패", err)
	}
	return nil
}

// ToggleLike 未登录时不调用后端
func (s *PostService) ToggleLike(ctx context.Context, sess model.Session, id int) (string, error) {
	if !sess.LoggedIn() {
		return "", apperrors.New(apperrors.CodeLoginRequired, MsgLoginRequired)
	}
	out, err := s.posts.ToggleLike(ctx, id)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeUnknown, "좋아요 처리 실패", err)
	}
	if out.Liked {
		return "좋아요!", nil
	}
	return "좋아요 취소", nil
}

// UploadImage 上传帖子图片；失败时清空图片地址和分类
func (s *PostService) UploadImage(ctx context.Context, draft model.PostDraft, file model.Upload) (ImageResult, error) {
	out, err := s.posts.UploadPostImage(ctx, file)
	if err != nil {
		draft.ImageURL = ""
		draft.ImageClass = ""
		util.Logger.Warn("上传帖子图片失败", zap.String("filename", file.Filename), zap.Error(err))
		return ImageResult{Draft: draft}, apperrors.Wrap(apperrors.CodeUnknown, "이미지 업로드 실패", err)
	}

	draft.ImageURL = out.ImageURL
	if out.Prediction == nil {
		draft.ImageClass = ""
		return ImageResult{Draft: draft, Toast: "이미지 업로드 완료"}, nil
	}

	draft.ImageClass = out.Prediction.ClassName
	return ImageResult{
		Draft:      draft,
		Prediction: out.Prediction,
		Toast:      "이미지 분류: " + out.Prediction.Label() + " (" + out.Prediction.Percent() + "%)",
	}, nil
}

// AnalyzeSentiment 对帖子正文做情感分析，与详情页渲染相互独立
func (s *PostService) AnalyzeSentiment(ctx context.Context, id int) (*model.Sentiment, error) {
	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.sentiment.Analyze(ctx, post.Content)
	if err != nil {
		util.Logger.Warn("情感分析失败", zap.Int("post_id", id), zap.Error(err))
		return nil, err
	}
	return out, nil
}
