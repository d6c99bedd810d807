package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"
)

type CommentService struct {
	repo interfaces.CommentRepository
}

func NewCommentService(repo interfaces.CommentRepository) *CommentService {
	return &CommentService{repo}
}

type CommentServiceInterface interface {
	Submit(ctx context.Context, sess model.Session, postID int, draft model.CommentDraft) (string, error)
	Delete(ctx context.Context, postID, commentID int) error
}

var _ CommentServiceInterface = (*CommentService)(nil)

var commentBlankMessages = map[string]string{
	"Content": "댓글 내용을 입력해주세요",
}

// Submit 新建或修改评论，返回成功提示
func (s *CommentService) Submit(ctx context.Context, sess model.Session, postID int, draft model.CommentDraft) (string, error) {
	if !sess.LoggedIn() {
		return "", apperrors.New(apperrors.CodeLoginRequired, MsgLoginRequired)
	}
	if err := checkBlank(draft, commentBlankMessages); err != nil {
		return "", err
	}
	content := strings.TrimSpace(draft.Content)

	var (
		out *model.CommentMutation
		err error
	)
	if draft.Editing() {
		out, err = s.repo.UpdateComment(ctx, postID, draft.CommentID, content)
	} else {
		out, err = s.repo.CreateComment(ctx, postID, content)
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeUnknown, "댓글 저장 실패", err)
	}

	if out != nil && out.Sentiment != nil {
		return commentSentimentToast(*out.Sentiment), nil
	}
	if draft.Editing() {
		return "댓글이 수정되었습니다", nil
	}
	return "댓글이 등록되었습니다", nil
}

// commentSentimentToast 评论提示只区分正面和负面，百分比不保留小数
func commentSentimentToast(s model.Sentiment) string {
	label := "부정적"
	if s.Label == model.SentimentPositive {
		label = "긍정적"
	}
	return fmt.Sprintf("댓글 등록! (%s %s%%)", label, model.FormatPercent(s.Confidence, 0))
}

func (s *CommentService) Delete(ctx context.Context, postID, commentID int) error {
	if err := s.repo.DeleteComment(ctx, postID, commentID); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "댓글 삭제 실패", err)
	}
	return nil
}
