package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Create(ctx context.Context, alumniID string, in service.JobInput) (*model.JobOpportunity, error) {
	args := m.Called(ctx, alumniID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobService) List(ctx context.Context, q service.JobQuery) (*service.ListResult[model.JobOpportunity], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.JobOpportunity]), args.Error(1)
}

func (m *MockJobService) ListOpen(ctx context.Context, q service.JobQuery) (*service.ListResult[model.JobOpportunity], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.JobOpportunity]), args.Error(1)
}

func (m *MockJobService) Get(ctx context.Context, id string) (*model.JobOpportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobService) Approve(ctx context.Context, id, note string) (*model.JobOpportunity, error) {
	args := m.Called(ctx, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobService) Reject(ctx context.Context, id, note string) (*model.JobOpportunity, error) {
	args := m.Called(ctx, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, actor auth.Session, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
