package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, j *model.JobOpportunity) (*model.JobOpportunity, error) {
	args := m.Called(ctx, j)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*model.JobOpportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, f repository.JobFilter, pq repository.PageQuery) (*repository.PageResult[model.JobOpportunity], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.JobOpportunity]), args.Error(1)
}

func (m *MockJobRepository) Decide(ctx context.Context, id string, status model.Status, note string, decidedAt time.Time) (*model.JobOpportunity, error) {
	args := m.Called(ctx, id, status, note, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobOpportunity), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
