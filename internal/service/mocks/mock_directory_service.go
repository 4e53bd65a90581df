package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListAlumni(ctx context.Context, q service.DirectoryQuery) (*service.ListResult[model.Alumni], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Alumni]), args.Error(1)
}

func (m *MockDirectoryService) GetAlumni(ctx context.Context, id string) (*model.Alumni, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alumni), args.Error(1)
}

func (m *MockDirectoryService) UpdateAlumni(ctx context.Context, id string, in service.AlumniProfileInput) (*model.Alumni, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alumni), args.Error(1)
}

func (m *MockDirectoryService) ListFaculty(ctx context.Context, q service.DirectoryQuery) (*service.ListResult[model.Faculty], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Faculty]), args.Error(1)
}

func (m *MockDirectoryService) GetFaculty(ctx context.Context, id string) (*model.Faculty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Faculty), args.Error(1)
}

func (m *MockDirectoryService) UpdateFaculty(ctx context.Context, id string, in service.FacultyProfileInput) (*model.Faculty, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Faculty), args.Error(1)
}

func (m *MockDirectoryService) DeleteUser(ctx context.Context, id string, role model.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
