package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"alumniportal/docs"
	"alumniportal/internal/auth"
	"alumniportal/internal/config"
	"alumniportal/internal/database"
	"alumniportal/internal/database/migration"
	handlers "alumniportal/internal/http/handler"
	"alumniportal/internal/http/middleware"
	"alumniportal/internal/logger"
	"alumniportal/internal/otel"
	"alumniportal/internal/repository/postgres"
	"alumniportal/internal/service"
	"alumniportal/internal/site"
	"alumniportal/internal/storage"
)

const bodyLimit = 10 << 20

// @title Alumni Portal API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	err = migration.EnsureMigrated(migrateCtx, db, log, cfg.Database.Host)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize object storage")
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize session tokens")
	}

	content, err := site.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load site content")
	}

	users := postgres.NewUserPostgres(db)
	alumni := postgres.NewAlumniPostgres(db)
	faculty := postgres.NewFacultyPostgres(db)
	requests := postgres.NewEventRequestPostgres(db)
	events := postgres.NewEventPostgres(db)
	jobs := postgres.NewJobPostgres(db)
	certs := postgres.NewCertificatePostgres(db)
	posts := postgres.NewPostPostgres(db)

	expiry := cfg.MinIO.PresignExpiry
	authSvc := service.NewAuthService(users, tokens)
	deps := handlers.Deps{
		DB:           db,
		Auth:         authSvc,
		Directory:    service.NewDirectoryService(users, alumni, faculty, certs, objStore),
		Events:       service.NewEventService(requests, events, faculty, certs, objStore, expiry),
		Jobs:         service.NewJobService(jobs),
		Certificates: service.NewCertificateService(certs, events, alumni, objStore, expiry),
		Content: service.NewContentService(service.ContentDeps{
			Posts: posts, Events: events, Jobs: jobs, Alumni: alumni, Faculty: faculty,
		}, objStore, expiry),
		Dashboard: service.NewDashboardService(service.DashboardDeps{
			Alumni: alumni, Faculty: faculty, Requests: requests,
			Events: events, Jobs: jobs, Certificates: certs,
		}),
		Site:         content,
		LoginLimiter: auth.NewLoginLimiter(cfg.Auth.LoginPerMinute, cfg.Auth.LoginBurst),
		Cookies:      handlers.CookieConfig{Secure: cfg.Auth.CookieSecure},
	}

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		created, err := authSvc.EnsureAdmin(ctx, "Administrator", cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			log.WithError(err).Fatal("failed to seed admin account")
		}
		log.WithFields(logrus.Fields{"component": "auth", "email": cfg.Auth.AdminEmail, "created": created}).Info("admin account ensured")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	// RequestID first so every later middleware can log it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Authenticate(tokens))
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())
	app.Use(middleware.PageGate())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	if cfg.WebRoot != "" {
		app.Static("/", cfg.WebRoot, fiber.Static{Index: "index.html"})
		// Client-side routes fall back to the app shell.
		app.Get("/*", func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api/") {
				return fiber.ErrNotFound
			}
			return c.SendFile(filepath.Join(cfg.WebRoot, "index.html"))
		})
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "app_host": cfg.AppHost}).Info("server starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	if err := shutdownTracing(flushCtx); err != nil {
		log.WithError(err).Error("tracing shutdown failed")
	}
}
