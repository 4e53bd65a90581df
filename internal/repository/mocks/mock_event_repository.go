package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

type MockEventRequestRepository struct {
	mock.Mock
}

func (m *MockEventRequestRepository) Create(ctx context.Context, r *model.EventRequest) (*model.EventRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventRequestRepository) FindByID(ctx context.Context, id string) (*model.EventRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventRequestRepository) List(ctx context.Context, f repository.EventRequestFilter, pq repository.PageQuery) (*repository.PageResult[model.EventRequest], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.EventRequest]), args.Error(1)
}

func (m *MockEventRequestRepository) Approve(ctx context.Context, id, facultyID, note string, ev *model.Event, decidedAt time.Time) (*model.EventRequest, error) {
	args := m.Called(ctx, id, facultyID, note, ev, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventRequestRepository) Reject(ctx context.Context, id, note string, decidedAt time.Time) (*model.EventRequest, error) {
	args := m.Called(ctx, id, note, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, f repository.EventFilter, pq repository.PageQuery) (*repository.PageResult[model.Event], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Event]), args.Error(1)
}

func (m *MockEventRepository) SetBanner(ctx context.Context, id, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
