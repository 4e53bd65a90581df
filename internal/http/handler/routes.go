package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/auth"
	"alumniportal/internal/http/middleware"
	"alumniportal/internal/model"
	"alumniportal/internal/service"
	"alumniportal/internal/site"
)

// Deps carries everything the routes need.
type Deps struct {
	DB           *sql.DB
	Auth         service.AuthService
	Directory    service.DirectoryService
	Events       service.EventService
	Jobs         service.JobService
	Certificates service.CertificateService
	Content      service.ContentService
	Dashboard    service.DashboardService
	Site         *site.Content
	LoginLimiter *auth.LoginLimiter
	Cookies      CookieConfig
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Authenticate must already be installed so sessions are available.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", Register(d.Auth, d.Cookies))
	authGroup.Post("/login", middleware.LoginRateLimit(d.LoginLimiter), Login(d.Auth, d.Cookies))
	authGroup.Post("/logout", Logout(d.Cookies))
	authGroup.Get("/me", middleware.RequireAuth(), Me(d.Auth))

	api.Get("/menu", middleware.RequireAuth(), Menu(d.Site))

	public := api.Group("/public")
	public.Get("/home", Home(d.Content))
	public.Get("/events", ListEvents(d.Events))
	public.Get("/events/:id", GetEvent(d.Events))
	public.Get("/gallery", ListPosts(d.Content, model.PostGallery))
	public.Get("/news", ListPosts(d.Content, model.PostNews))
	public.Get("/about", About(d.Site))
	public.Get("/jobs", ListOpenJobs(d.Jobs))

	directory := api.Group("/directory", middleware.RequireAuth())
	directory.Get("/alumni", ListAlumni(d.Directory))
	directory.Get("/alumni/:id", GetAlumni(d.Directory))
	directory.Get("/faculty", ListFaculty(d.Directory))
	directory.Get("/faculty/:id", GetFaculty(d.Directory))

	certs := api.Group("/certificates", middleware.RequireAuth())
	certs.Get("/:id", GetCertificate(d.Certificates))
	certs.Get("/:id/download", DownloadCertificate(d.Certificates))
	certs.Delete("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleFaculty), DeleteCertificate(d.Certificates))

	admin := api.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	admin.Get("/dashboard", Dashboard(d.Dashboard))
	admin.Post("/faculty", CreateFaculty(d.Auth))
	admin.Delete("/faculty/:id", DeleteUser(d.Directory, model.RoleFaculty))
	admin.Delete("/alumni/:id", DeleteUser(d.Directory, model.RoleAlumni))
	admin.Get("/event-requests", ListEventRequests(d.Events))
	admin.Post("/event-requests/:id/approve", ApproveEventRequest(d.Events))
	admin.Post("/event-requests/:id/reject", RejectEventRequest(d.Events))
	admin.Post("/events", CreateEvent(d.Events))
	admin.Delete("/events/:id", DeleteEvent(d.Events))
	admin.Post("/events/:id/banner", UploadEventBanner(d.Events))
	admin.Get("/jobs", ListJobs(d.Jobs))
	admin.Get("/jobs/:id", GetJob(d.Jobs))
	admin.Post("/jobs/:id/approve", ApproveJob(d.Jobs))
	admin.Post("/jobs/:id/reject", RejectJob(d.Jobs))
	admin.Delete("/jobs/:id", DeleteJob(d.Jobs))
	admin.Get("/certificates", ListCertificates(d.Certificates))
	admin.Post("/certificates", IssueCertificate(d.Certificates))
	admin.Post("/posts", CreatePost(d.Content))
	admin.Delete("/posts/:id", DeletePost(d.Content))

	alumni := api.Group("/alumni", middleware.RequireRole(model.RoleAlumni))
	alumni.Get("/dashboard", Dashboard(d.Dashboard))
	alumni.Get("/profile", MyProfile(d.Directory))
	alumni.Put("/profile", UpdateAlumniProfile(d.Directory))
	alumni.Get("/event-requests", ListEventRequests(d.Events))
	alumni.Post("/event-requests", RequestEvent(d.Events))
	alumni.Get("/jobs", ListJobs(d.Jobs))
	alumni.Post("/jobs", CreateJob(d.Jobs))
	alumni.Delete("/jobs/:id", DeleteJob(d.Jobs))
	alumni.Get("/certificates", ListCertificates(d.Certificates))

	faculty := api.Group("/faculty", middleware.RequireRole(model.RoleFaculty))
	faculty.Get("/dashboard", Dashboard(d.Dashboard))
	faculty.Get("/profile", MyProfile(d.Directory))
	faculty.Put("/profile", UpdateFacultyProfile(d.Directory))
	faculty.Get("/events", ListAssignedEvents(d.Events))
	faculty.Get("/event-requests", ListEventRequests(d.Events))
	faculty.Get("/certificates", ListCertificates(d.Certificates))
	faculty.Post("/certificates", IssueCertificate(d.Certificates))
}
