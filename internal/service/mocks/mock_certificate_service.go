package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) Issue(ctx context.Context, actor auth.Session, in service.IssueInput, file service.CertificateFile) (*model.Certificate, error) {
	args := m.Called(ctx, actor, in, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockCertificateService) List(ctx context.Context, q service.CertificateQuery) (*service.ListResult[model.Certificate], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Certificate]), args.Error(1)
}

func (m *MockCertificateService) Get(ctx context.Context, actor auth.Session, id string) (*model.Certificate, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockCertificateService) DownloadURL(ctx context.Context, actor auth.Session, id string) (string, error) {
	args := m.Called(ctx, actor, id)
	return args.String(0), args.Error(1)
}

func (m *MockCertificateService) Delete(ctx context.Context, actor auth.Session, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
