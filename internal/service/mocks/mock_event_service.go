package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) RequestEvent(ctx context.Context, alumniID string, in service.RequestEventInput) (*model.EventRequest, error) {
	args := m.Called(ctx, alumniID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventService) ListRequests(ctx context.Context, q service.RequestQuery) (*service.ListResult[model.EventRequest], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.EventRequest]), args.Error(1)
}

func (m *MockEventService) GetRequest(ctx context.Context, id string) (*model.EventRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventService) ApproveRequest(ctx context.Context, id string, in service.ApproveInput) (*model.EventRequest, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventService) RejectRequest(ctx context.Context, id, note string) (*model.EventRequest, error) {
	args := m.Called(ctx, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, q service.EventQuery) (*service.ListResult[model.Event], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Event]), args.Error(1)
}

func (m *MockEventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) CreateEvent(ctx context.Context, adminID string, in service.CreateEventInput) (*model.Event, error) {
	args := m.Called(ctx, adminID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) UploadBanner(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Event, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}
