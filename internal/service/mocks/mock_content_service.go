package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) CreatePost(ctx context.Context, authorID string, in service.PostInput, image *service.PostImage) (*model.Post, error) {
	args := m.Called(ctx, authorID, in, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockContentService) ListPosts(ctx context.Context, kind model.PostKind, limit, offset int) (*service.ListResult[model.Post], error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Post]), args.Error(1)
}

func (m *MockContentService) DeletePost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentService) Home(ctx context.Context) (*service.HomePage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomePage), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context, actor auth.Session) (*service.DashboardStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardStats), args.Error(1)
}
