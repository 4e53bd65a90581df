package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"alumniportal/internal/logger"
)

// ErrorLocalKey holds an internal error a handler answered with 500, so it
// reaches the log without leaking into the response.
const ErrorLocalKey = "internal_error"

// Logger logs one JSON line per HTTP request with request_id, method, path,
// status, latency in milliseconds and, when signed in, user_id and role.
// Requests inside a trace also get trace_id and span_id.
// 5xx responses are logged at error level and 4xx at warn.
func Logger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := logrus.Fields{
			"request_id": GetRequestID(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if s := SessionFrom(c); s != nil {
			fields["user_id"] = s.UserID
			fields["role"] = s.Role
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.IsValid() {
			fields["trace_id"] = sc.TraceID().String()
			fields["span_id"] = sc.SpanID().String()
		}

		entry := log.WithFields(fields)
		switch {
		case status >= fiber.StatusInternalServerError:
			if err != nil {
				entry = entry.WithError(err)
			} else if ierr, ok := c.Locals(ErrorLocalKey).(error); ok {
				entry = entry.WithError(ierr)
			}
			entry.Error("request")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}

		return err
	}
}

// LoggerWithWriter is Logger backed by a fresh JSON logger writing to w.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.NewWithWriter(w, loc))
}
