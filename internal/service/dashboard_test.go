package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
	repoMocks "alumniportal/internal/repository/mocks"
)

type dashMocks struct {
	alumni   *repoMocks.MockAlumniRepository
	faculty  *repoMocks.MockFacultyRepository
	requests *repoMocks.MockEventRequestRepository
	events   *repoMocks.MockEventRepository
	jobs     *repoMocks.MockJobRepository
	certs    *repoMocks.MockCertificateRepository
}

func newTestDashboardService() (*dashboardService, dashMocks) {
	m := dashMocks{
		alumni:   new(repoMocks.MockAlumniRepository),
		faculty:  new(repoMocks.MockFacultyRepository),
		requests: new(repoMocks.MockEventRequestRepository),
		events:   new(repoMocks.MockEventRepository),
		jobs:     new(repoMocks.MockJobRepository),
		certs:    new(repoMocks.MockCertificateRepository),
	}
	svc := NewDashboardService(DashboardDeps{
		Alumni: m.alumni, Faculty: m.faculty, Requests: m.requests,
		Events: m.events, Jobs: m.jobs, Certificates: m.certs,
	}).(*dashboardService)
	svc.clock = fixedClock
	return svc, m
}

func TestDashboardService_Admin(t *testing.T) {
	ctx := mock.Anything
	svc, m := newTestDashboardService()

	m.alumni.On("List", ctx, repository.DirectoryFilter{}, countPage).Return(&repository.PageResult[model.Alumni]{Total: 50}, nil)
	m.faculty.On("List", ctx, repository.DirectoryFilter{}, countPage).Return(&repository.PageResult[model.Faculty]{Total: 8}, nil)
	m.requests.On("List", ctx, repository.EventRequestFilter{Status: model.StatusPending}, countPage).
		Return(&repository.PageResult[model.EventRequest]{Total: 3}, nil)
	m.jobs.On("List", ctx, repository.JobFilter{Status: model.StatusPending}, countPage).
		Return(&repository.PageResult[model.JobOpportunity]{Total: 2}, nil)
	m.events.On("List", ctx, repository.EventFilter{Window: repository.WindowUpcoming, Now: fixedNow}, countPage).
		Return(&repository.PageResult[model.Event]{Total: 5}, nil)

	stats, err := svc.Stats(context.Background(), auth.Session{UserID: "adm", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 50, *stats.Alumni)
	assert.Equal(t, 8, *stats.Faculty)
	assert.Equal(t, 3, *stats.PendingEventRequests)
	assert.Equal(t, 2, *stats.PendingJobs)
	assert.Equal(t, 5, *stats.UpcomingEvents)
	assert.Nil(t, stats.Certificates)
}

func TestDashboardService_Alumni(t *testing.T) {
	ctx := mock.Anything
	svc, m := newTestDashboardService()

	m.requests.On("List", ctx, repository.EventRequestFilter{AlumniID: "a-1", Status: model.StatusPending}, countPage).
		Return(&repository.PageResult[model.EventRequest]{Total: 1}, nil)
	m.jobs.On("List", ctx, repository.JobFilter{AlumniID: "a-1", Status: model.StatusPending}, countPage).
		Return(&repository.PageResult[model.JobOpportunity]{Total: 0}, nil)
	m.certs.On("List", ctx, repository.CertificateFilter{AlumniID: "a-1"}, countPage).
		Return(&repository.PageResult[model.Certificate]{Total: 4}, nil)

	stats, err := svc.Stats(context.Background(), auth.Session{UserID: "a-1", Role: model.RoleAlumni})
	require.NoError(t, err)
	assert.Equal(t, 1, *stats.MyEventRequests)
	assert.Equal(t, 0, *stats.MyJobs)
	assert.Equal(t, 4, *stats.Certificates)
	assert.Nil(t, stats.Alumni)
}

func TestDashboardService_FacultyError(t *testing.T) {
	ctx := mock.Anything
	svc, m := newTestDashboardService()

	m.events.On("List", ctx, mock.Anything, countPage).Return(nil, errors.New("db down"))
	m.certs.On("List", ctx, repository.CertificateFilter{FacultyID: "f-1"}, countPage).
		Return(&repository.PageResult[model.Certificate]{Total: 9}, nil).Maybe()

	stats, err := svc.Stats(context.Background(), auth.Session{UserID: "f-1", Role: model.RoleFaculty})
	assert.Nil(t, stats)
	assert.EqualError(t, err, "db down")
}
