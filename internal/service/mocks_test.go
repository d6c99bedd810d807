package service

import (
	"context"

	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockAuthRepository 是 AuthRepository 接口的模拟实现
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Login(ctx context.Context, in model.LoginInput) (*model.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthRepository) Signup(ctx context.Context, in model.SignupInput) (*model.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthRepository) UploadProfileImage(ctx context.Context, file model.Upload) (*model.ProfileUpload, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfileUpload), args.Error(1)
}

func (m *MockAuthRepository) DeleteAccount(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPostRepository 是 PostRepository 接口的模拟实现
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) ListPosts(ctx context.Context, page, limit int) (*model.PostPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostPage), args.Error(1)
}

func (m *MockPostRepository) GetPost(ctx context.Context, id int) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) CreatePost(ctx context.Context, in model.PostInput) (*model.PostRef, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostRef), args.Error(1)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, id int, in model.PostInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ToggleLike(ctx context.Context, id int) (*model.LikeResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeResult), args.Error(1)
}

func (m *MockPostRepository) IncrementViewCount(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) UploadPostImage(ctx context.Context, file model.Upload) (*model.ImageUpload, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImageUpload), args.Error(1)
}

// MockCommentRepository 是 CommentRepository 接口的模拟实现
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListComments(ctx context.Context, postID int) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, postID int, content string) (*model.CommentMutation, error) {
	args := m.Called(ctx, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentMutation), args.Error(1)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, postID, commentID int, content string) (*model.CommentMutation, error) {
	args := m.Called(ctx, postID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentMutation), args.Error(1)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, postID, commentID int) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

// MockSentimentRepository 是 SentimentRepository 接口的模拟实现
type MockSentimentRepository struct {
	mock.Mock
}

func (m *MockSentimentRepository) Analyze(ctx context.Context, text string) (*model.Sentiment, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sentiment), args.Error(1)
}

var (
	_ interfaces.AuthRepository      = (*MockAuthRepository)(nil)
	_ interfaces.PostRepository      = (*MockPostRepository)(nil)
	_ interfaces.CommentRepository   = (*MockCommentRepository)(nil)
	_ interfaces.SentimentRepository = (*MockSentimentRepository)(nil)
)
