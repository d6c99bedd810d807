package rest

import (
	"context"
	"fmt"
	"net/http"

	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"
)

type CommentRepository struct {
	client *Client
}

func NewCommentRepository(client *Client) *CommentRepository {
	return &CommentRepository{client}
}

var _ interfaces.CommentRepository = (*CommentRepository)(nil)

type commentBody struct {
	Content string `json:"content"`
}

func (r *CommentRepository) ListComments(ctx context.Context, postID int) ([]*model.Comment, error) {
	res := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/comments", postID), nil)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.CommentPage
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	if out.Comments == nil {
		out.Comments = []*model.Comment{}
	}
	return out.Comments, nil
}

func (r *CommentRepository) CreateComment(ctx context.Context, postID int, content string) (*model.CommentMutation, error) {
	return r.mutate(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), content)
}

func (r *CommentRepository) UpdateComment(ctx context.Context, postID, commentID int, content string) (*model.CommentMutation, error) {
	return r.mutate(ctx, http.MethodPatch, fmt.Sprintf("/posts/%d/comments/%d", postID, commentID), content)
}

func (r *CommentRepository) DeleteComment(ctx context.Context, postID, commentID int) error {
	res := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d/comments/%d", postID, commentID), nil)
	if !res.OK {
		return res.Err()
	}
	return nil
}

// mutate 成功时 data 可以为空；有 sentiment 时一并返回
func (r *CommentRepository) mutate(ctx context.Context, method, path, content string) (*model.CommentMutation, error) {
	res := r.client.Do(ctx, method, path, commentBody{Content: content})
	if !res.OK {
		return nil, res.Err()
	}
	out := &model.CommentMutation{}
	_ = res.Decode(out)
	return out, nil
}
