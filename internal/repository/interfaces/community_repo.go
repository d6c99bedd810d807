package interfaces

import (
	"context"

	"community-frontend/internal/model"
)

// PostRepository 定义了帖子相关的后端接口
type PostRepository interface {
	ListPosts(ctx context.Context, page, limit int) (*model.PostPage, error)
	GetPost(ctx context.Context, id int) (*model.Post, error)
	CreatePost(ctx context.Context, in model.PostInput) (*model.PostRef, error)
	UpdatePost(ctx context.Context, id int, in model.PostInput) error
	DeletePost(ctx context.Context, id int) error
	ToggleLike(ctx context.Context, id int) (*model.LikeResult, error)
	IncrementViewCount(ctx context.Context, id int) error
	UploadPostImage(ctx context.Context, file model.Upload) (*model.ImageUpload, error)
}

// CommentRepository 定义了评论相关的后端接口
type CommentRepository interface {
	ListComments(ctx context.Context, postID int) ([]*model.Comment, error)
	CreateComment(ctx context.Context, postID int, content string) (*model.CommentMutation, error)
	UpdateComment(ctx context.Context, postID, commentID int, content string) (*model.CommentMutation, error)
	DeleteComment(ctx context.Context, postID, commentID int) error
}

// SentimentRepository 定义了模型服务的情感分析接口
type SentimentRepository interface {
	Analyze(ctx context.Context, text string) (*model.Sentiment, error)
}
