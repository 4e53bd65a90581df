package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alumniportal/internal/auth"
	"alumniportal/internal/http/middleware"
	"alumniportal/internal/model"
	"alumniportal/internal/service"
	serviceMocks "alumniportal/internal/service/mocks"
	"alumniportal/internal/site"
)

// as installs a fixed session in place of token verification.
func as(s auth.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.SessionLocalKey, &s)
		return c.Next()
	}
}

var (
	adminSession   = auth.Session{UserID: uuid.NewString(), Role: model.RoleAdmin, Name: "Root"}
	alumniSession  = auth.Session{UserID: uuid.NewString(), Role: model.RoleAlumni, Name: "Ana"}
	facultySession = auth.Session{UserID: uuid.NewString(), Role: model.RoleFaculty, Name: "Dr. Rao"}
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func multipartRequest(target string, fields map[string]string, fileField, filename, contentType string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	if fileField != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="` + fileField + `"; filename="` + filename + `"`}
		h["Content-Type"] = []string{contentType}
		part, _ := writer.CreatePart(h)
		part.Write([]byte("%PDF-1.4"))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newApp()
	app.Post("/login", Login(mockSvc, CookieConfig{Secure: true}))

	t.Run("success sets cookies", func(t *testing.T) {
		exp := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
		mockSvc.On("Login", mock.Anything, "ana@uni.edu", "secret-pass").Return(&service.AuthResult{
			Token:     "signed.jwt.token",
			ExpiresAt: exp,
			User:      &model.User{ID: alumniSession.UserID, Email: "ana@uni.edu", Role: model.RoleAlumni},
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/login", loginRequest{Email: "ana@uni.edu", Password: "secret-pass"}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body authResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "signed.jwt.token", body.Token)
		assert.Equal(t, "/alumni/dashboard", body.Redirect)

		cookies := map[string]*http.Cookie{}
		for _, ck := range resp.Cookies() {
			cookies[ck.Name] = ck
		}
		require.Contains(t, cookies, middleware.TokenCookie)
		assert.True(t, cookies[middleware.TokenCookie].HttpOnly)
		assert.True(t, cookies[middleware.TokenCookie].Secure)
		require.Contains(t, cookies, middleware.RoleCookie)
		assert.Equal(t, "ALUMNI", cookies[middleware.RoleCookie].Value)
		assert.False(t, cookies[middleware.RoleCookie].HttpOnly)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "ana@uni.edu", "wrong-pass").Return(nil, service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/login", loginRequest{Email: "ana@uni.edu", Password: "wrong-pass"}))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp).Error.Code)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/login", map[string]string{"email": "nope"}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "email", body.Error.Details["email"])
		assert.Equal(t, "required", body.Error.Details["password"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestRegister(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newApp()
	app.Post("/register", Register(mockSvc, CookieConfig{}))

	in := service.RegisterInput{
		Name: "Ana", Email: "ana@uni.edu", Password: "long-enough",
		Department: "CSE", GraduationYear: 2019,
	}

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, in).Return(&service.AuthResult{
			Token: "t", ExpiresAt: time.Now().Add(time.Hour),
			User: &model.User{ID: "u-1", Role: model.RoleAlumni},
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/register", in))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("email taken", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, in).Return(nil, service.ErrEmailTaken).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/register", in))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "EMAIL_TAKEN", decodeError(t, resp).Error.Code)
	})
}

func TestLogout(t *testing.T) {
	app := newApp()
	app.Post("/logout", Logout(CookieConfig{}))

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	names := []string{}
	for _, ck := range resp.Cookies() {
		names = append(names, ck.Name)
		assert.Empty(t, ck.Value)
		assert.True(t, ck.Expires.Before(time.Now()))
	}
	assert.ElementsMatch(t, []string{middleware.TokenCookie, middleware.RoleCookie}, names)
}

func TestListEventRequests(t *testing.T) {
	mockSvc := new(serviceMocks.MockEventService)

	t.Run("alumni see their own", func(t *testing.T) {
		app := newApp()
		app.Get("/requests", as(alumniSession), ListEventRequests(mockSvc))

		mockSvc.On("ListRequests", mock.Anything, service.RequestQuery{
			AlumniID: alumniSession.UserID, Status: model.StatusPending, Limit: 10,
		}).Return(&service.ListResult[model.EventRequest]{Items: []model.EventRequest{{ID: "r-1"}}, Total: 1, Limit: 10}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/requests?status=pending", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res service.ListResult[model.EventRequest]
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Len(t, res.Items, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("faculty see assigned", func(t *testing.T) {
		app := newApp()
		app.Get("/requests", as(facultySession), ListEventRequests(mockSvc))

		mockSvc.On("ListRequests", mock.Anything, service.RequestQuery{FacultyID: facultySession.UserID, Limit: 10}).
			Return(&service.ListResult[model.EventRequest]{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/requests", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		app := newApp()
		app.Get("/requests", as(adminSession), ListEventRequests(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/requests?status=maybe", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_STATUS", decodeError(t, resp).Error.Code)
	})
}

func TestApproveEventRequest(t *testing.T) {
	mockSvc := new(serviceMocks.MockEventService)
	app := newApp()
	app.Post("/requests/:id/approve", as(adminSession), ApproveEventRequest(mockSvc))

	id := uuid.NewString()
	in := service.ApproveInput{FacultyID: facultySession.UserID, Note: "go ahead"}

	t.Run("approved", func(t *testing.T) {
		mockSvc.On("ApproveRequest", mock.Anything, id, in).
			Return(&model.EventRequest{ID: id, Status: model.StatusApproved}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/requests/"+id+"/approve", in))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("already decided", func(t *testing.T) {
		mockSvc.On("ApproveRequest", mock.Anything, id, in).Return(nil, service.ErrAlreadyDecided).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/requests/"+id+"/approve", in))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "ALREADY_DECIDED", decodeError(t, resp).Error.Code)
	})

	t.Run("faculty id must be a uuid", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/requests/"+id+"/approve", map[string]string{"faculty_id": "bob"}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "uuid", decodeError(t, resp).Error.Details["faculty_id"])
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/requests/abc/approve", in))
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestRejectJob_EmptyBody(t *testing.T) {
	mockSvc := new(serviceMocks.MockJobService)
	app := newApp()
	app.Post("/jobs/:id/reject", as(adminSession), RejectJob(mockSvc))

	id := uuid.NewString()
	mockSvc.On("Reject", mock.Anything, id, "").Return(&model.JobOpportunity{ID: id, Status: model.StatusRejected}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/jobs/"+id+"/reject", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestDeleteJob(t *testing.T) {
	mockSvc := new(serviceMocks.MockJobService)
	app := newApp()
	app.Delete("/jobs/:id", as(alumniSession), DeleteJob(mockSvc))

	id := uuid.NewString()
	mockSvc.On("Delete", mock.Anything, alumniSession, id).Return(service.ErrAlreadyDecided).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/jobs/"+id, nil))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestIssueCertificate(t *testing.T) {
	mockSvc := new(serviceMocks.MockCertificateService)
	app := newApp()
	app.Post("/certificates", as(facultySession), IssueCertificate(mockSvc))

	fields := map[string]string{
		"alumni_id": alumniSession.UserID,
		"event_id":  uuid.NewString(),
		"title":     "Participation",
	}
	in := service.IssueInput{AlumniID: fields["alumni_id"], EventID: fields["event_id"], Title: "Participation"}
	isPDF := mock.MatchedBy(func(f service.CertificateFile) bool {
		return f.Filename == "cert.pdf" && f.ContentType == "application/pdf" && f.Reader != nil
	})

	t.Run("issued", func(t *testing.T) {
		mockSvc.On("Issue", mock.Anything, facultySession, in, isPDF).
			Return(&model.Certificate{ID: "c-1", Title: "Participation"}, nil).Once()

		resp, _ := app.Test(multipartRequest("/certificates", fields, "file", "cert.pdf", "application/pdf"))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var cert model.Certificate
		json.NewDecoder(resp.Body).Decode(&cert)
		assert.Equal(t, "c-1", cert.ID)
	})

	t.Run("event not finished", func(t *testing.T) {
		mockSvc.On("Issue", mock.Anything, facultySession, in, isPDF).Return(nil, service.ErrEventNotFinished).Once()

		resp, _ := app.Test(multipartRequest("/certificates", fields, "file", "cert.pdf", "application/pdf"))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "EVENT_NOT_FINISHED", decodeError(t, resp).Error.Code)
	})

	t.Run("file required", func(t *testing.T) {
		resp, _ := app.Test(multipartRequest("/certificates", fields, "", "", ""))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, _ := app.Test(multipartRequest("/certificates", map[string]string{"title": "x"}, "file", "cert.pdf", "application/pdf"))
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "alumni_id")
		assert.Contains(t, body.Error.Details, "event_id")
	})

	mockSvc.AssertExpectations(t)
}

func TestDownloadCertificate(t *testing.T) {
	mockSvc := new(serviceMocks.MockCertificateService)
	app := newApp()
	app.Get("/certificates/:id/download", as(alumniSession), DownloadCertificate(mockSvc))

	id := uuid.NewString()

	t.Run("redirects to presigned url", func(t *testing.T) {
		mockSvc.On("DownloadURL", mock.Anything, alumniSession, id).Return("https://files.example/cert.pdf?sig=1", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/certificates/"+id+"/download", nil))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://files.example/cert.pdf?sig=1", resp.Header.Get("Location"))
	})

	t.Run("hidden from others", func(t *testing.T) {
		other := uuid.NewString()
		mockSvc.On("DownloadURL", mock.Anything, alumniSession, other).Return("", service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/certificates/"+other+"/download", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListCertificates_Filters(t *testing.T) {
	mockSvc := new(serviceMocks.MockCertificateService)
	app := newApp()
	app.Get("/alumni/certificates", as(alumniSession), ListCertificates(mockSvc))
	app.Get("/admin/certificates", as(adminSession), ListCertificates(mockSvc))

	t.Run("alumni scoped to self", func(t *testing.T) {
		eventID := uuid.NewString()
		mockSvc.On("List", mock.Anything, service.CertificateQuery{
			AlumniID: alumniSession.UserID, EventID: eventID, Limit: 10,
		}).Return(&service.ListResult[model.Certificate]{Items: []model.Certificate{}, Limit: 10}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/alumni/certificates?event_id="+eventID+"&alumni_id="+uuid.NewString(), nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	for _, target := range []string{
		"/alumni/certificates?event_id=x",
		"/admin/certificates?alumni_id=not-a-uuid",
		"/admin/certificates?faculty_id=1",
	} {
		t.Run("rejects malformed id "+target, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		})
	}
	mockSvc.AssertNumberOfCalls(t, "List", 1)
}

func TestCreatePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockContentService)
	app := newApp()
	app.Post("/posts", as(adminSession), CreatePost(mockSvc))

	t.Run("news without image", func(t *testing.T) {
		mockSvc.On("CreatePost", mock.Anything, adminSession.UserID,
			service.PostInput{Kind: "NEWS", Title: "Homecoming", Body: "Join us"}, (*service.PostImage)(nil),
		).Return(&model.Post{ID: "p-1"}, nil).Once()

		resp, _ := app.Test(multipartRequest("/posts", map[string]string{"kind": "NEWS", "title": "Homecoming", "body": "Join us"}, "", "", ""))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("gallery with image", func(t *testing.T) {
		mockSvc.On("CreatePost", mock.Anything, adminSession.UserID,
			service.PostInput{Kind: "GALLERY", Title: "Stage"},
			mock.MatchedBy(func(img *service.PostImage) bool {
				return img != nil && img.Filename == "stage.png" && img.ContentType == "image/png"
			}),
		).Return(&model.Post{ID: "p-2"}, nil).Once()

		resp, _ := app.Test(multipartRequest("/posts", map[string]string{"kind": "GALLERY", "title": "Stage"}, "image", "stage.png", "image/png"))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unknown kind", func(t *testing.T) {
		resp, _ := app.Test(multipartRequest("/posts", map[string]string{"kind": "BLOG", "title": "x"}, "", "", ""))
		assert.Equal(t, "oneof=NEWS GALLERY", decodeError(t, resp).Error.Details["kind"])
	})

	mockSvc.AssertExpectations(t)
}

func TestListAlumni(t *testing.T) {
	mockSvc := new(serviceMocks.MockDirectoryService)
	app := newApp()
	app.Get("/alumni", as(facultySession), ListAlumni(mockSvc))

	t.Run("filters", func(t *testing.T) {
		mockSvc.On("ListAlumni", mock.Anything, service.DirectoryQuery{
			Query: "acme", Department: "CSE", GraduationYear: 2019, Limit: 5, Offset: 10,
		}).Return(&service.ListResult[model.Alumni]{Total: 0}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/alumni?q=acme&department=CSE&graduation_year=2019&limit=5&offset=10", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad year", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/alumni?graduation_year=soon", nil))
		assert.Equal(t, "INVALID_QUERY", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/alumni?offset=x", nil))
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error is not leaked", func(t *testing.T) {
		mockSvc.On("ListAlumni", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/alumni", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(raw), "connection refused")
	})
}

func TestDashboardAndMenu(t *testing.T) {
	dash := new(serviceMocks.MockDashboardService)
	content, err := site.Load()
	require.NoError(t, err)

	app := newApp()
	app.Get("/dashboard", as(facultySession), Dashboard(dash))
	app.Get("/menu", as(facultySession), Menu(content))

	assigned := 3
	dash.On("Stats", mock.Anything, facultySession).
		Return(&service.DashboardStats{Role: model.RoleFaculty, AssignedEvents: &assigned}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stats map[string]any
	json.NewDecoder(resp.Body).Decode(&stats)
	assert.EqualValues(t, 3, stats["assigned_events"])
	assert.NotContains(t, stats, "alumni")

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/menu", nil))
	var items []site.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.NotEmpty(t, items)
	assert.Equal(t, "/faculty/dashboard", items[0].Path)
}

func TestRouting(t *testing.T) {
	content, err := site.Load()
	require.NoError(t, err)

	jobs := new(serviceMocks.MockJobService)
	deps := Deps{
		Auth:         new(serviceMocks.MockAuthService),
		Directory:    new(serviceMocks.MockDirectoryService),
		Events:       new(serviceMocks.MockEventService),
		Jobs:         jobs,
		Certificates: new(serviceMocks.MockCertificateService),
		Content:      new(serviceMocks.MockContentService),
		Dashboard:    new(serviceMocks.MockDashboardService),
		Site:         content,
		LoginLimiter: auth.NewLoginLimiter(10, 5),
	}

	newRouted := func(s *auth.Session) *fiber.App {
		app := newApp()
		if s != nil {
			app.Use(as(*s))
		}
		RegisterRoutes(app, deps)
		return app
	}

	t.Run("not found route", func(t *testing.T) {
		resp, _ := newRouted(nil).Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := newRouted(nil).Test(httptest.NewRequest(http.MethodPost, "/health", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("role api needs a session", func(t *testing.T) {
		resp, _ := newRouted(nil).Test(httptest.NewRequest(http.MethodGet, "/api/admin/jobs", nil))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})

	t.Run("role api rejects other roles", func(t *testing.T) {
		resp, _ := newRouted(&alumniSession).Test(httptest.NewRequest(http.MethodGet, "/api/admin/jobs", nil))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("public jobs are open", func(t *testing.T) {
		jobs.On("ListOpen", mock.Anything, service.JobQuery{Limit: 10}).
			Return(&service.ListResult[model.JobOpportunity]{}, nil).Once()

		resp, _ := newRouted(nil).Test(httptest.NewRequest(http.MethodGet, "/api/public/jobs", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		jobs.AssertExpectations(t)
	})

	t.Run("about page", func(t *testing.T) {
		resp, _ := newRouted(nil).Test(httptest.NewRequest(http.MethodGet, "/api/public/about", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
