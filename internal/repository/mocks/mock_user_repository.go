package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateAlumni(ctx context.Context, u *model.User, a *model.Alumni) (*model.User, error) {
	args := m.Called(ctx, u, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.User, *model.Alumni) *model.User); ok {
		return f(ctx, u, a), args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateFaculty(ctx context.Context, u *model.User, f *model.Faculty) (*model.User, error) {
	args := m.Called(ctx, u, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAlumniRepository struct {
	mock.Mock
}

func (m *MockAlumniRepository) List(ctx context.Context, f repository.DirectoryFilter, pq repository.PageQuery) (*repository.PageResult[model.Alumni], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Alumni]), args.Error(1)
}

func (m *MockAlumniRepository) FindByID(ctx context.Context, id string) (*model.Alumni, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alumni), args.Error(1)
}

func (m *MockAlumniRepository) Update(ctx context.Context, a *model.Alumni) (*model.Alumni, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alumni), args.Error(1)
}

type MockFacultyRepository struct {
	mock.Mock
}

func (m *MockFacultyRepository) List(ctx context.Context, f repository.DirectoryFilter, pq repository.PageQuery) (*repository.PageResult[model.Faculty], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Faculty]), args.Error(1)
}

func (m *MockFacultyRepository) FindByID(ctx context.Context, id string) (*model.Faculty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Faculty), args.Error(1)
}

func (m *MockFacultyRepository) Update(ctx context.Context, f *model.Faculty) (*model.Faculty, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Faculty), args.Error(1)
}
