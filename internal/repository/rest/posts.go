package rest

import (
	"context"
	"fmt"
	"net/http"

	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"
)

type PostRepository struct {
	client *Client
}

func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client}
}

var _ interfaces.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) ListPosts(ctx context.Context, page, limit int) (*model.PostPage, error) {
	res := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/posts?page=%d&limit=%d", page, limit), nil)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.PostPage
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	if out.Page == 0 {
		out.Page = page
	}
	if out.Limit == 0 {
		out.Limit = limit
	}
	return &out, nil
}

func (r *PostRepository) GetPost(ctx context.Context, id int) (*model.Post, error) {
	res := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.Post
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PostRepository) CreatePost(ctx context.Context, in model.PostInput) (*model.PostRef, error) {
	res := r.client.Do(ctx, http.MethodPost, "/posts", in)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.PostRef
	// 创建成功但未返回 post_id 时仍视为成功
	_ = res.Decode(&out)
	return &out, nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, id int, in model.PostInput) error {
	return r.send(ctx, http.MethodPatch, fmt.Sprintf("/posts/%d", id), in)
}

func (r *PostRepository) DeletePost(ctx context.Context, id int) error {
	return r.send(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil)
}

func (r *PostRepository) ToggleLike(ctx context.Context, id int) (*model.LikeResult, error) {
	res := r.client.Do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/like", id), nil)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.LikeResult
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PostRepository) IncrementViewCount(ctx context.Context, id int) error {
	return r.send(ctx, http.MethodPatch, fmt.Sprintf("/posts/%d/view", id), nil)
}

func (r *PostRepository) UploadPostImage(ctx context.Context, file model.Upload) (*model.ImageUpload, error) {
	res := r.client.Do(ctx, http.MethodPost, "/posts/upload", &file)
	if !res.OK {
		return nil, res.Err()
	}
	var out model.ImageUpload
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PostRepository) send(ctx context.Context, method, path string, body any) error {
	if res := r.client.Do(ctx, method, path, body); !res.OK {
		return res.Err()
	}
	return nil
}
