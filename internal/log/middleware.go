package log

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	localsLoggerKey = "logger"
)

type ctxKey struct{}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by NewContext or the default one.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{Logger: slog.Default(), component: "unknown"}
}

// FromFiber returns the request-scoped logger set by RequestLogger.
func FromFiber(c *fiber.Ctx) *Logger {
	if l, ok := c.Locals(localsLoggerKey).(*Logger); ok {
		return l
	}
	return FromContext(c.UserContext())
}

// RequestLogger tags each request with an id (reusing X-Request-ID when the
// client sends one) and logs its outcome once the handler chain returns.
func RequestLogger(base *Logger) fiber.Handler {
	httpLog := base.WithComponent(ComponentHTTP)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		reqLog := httpLog.With(FieldRequestID, requestID)
		c.Locals(localsLoggerKey, reqLog)
		c.SetUserContext(NewContext(c.UserContext(), reqLog))

		chainErr := c.Next()
		if chainErr != nil {
			// let fiber's error handler write the response before we log the status
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		args := []any{
			FieldMethod, c.Method(),
			FieldPath, c.Path(),
			FieldQuery, string(c.Request().URI().QueryString()),
			FieldStatusCode, status,
			FieldDuration, time.Since(start).Milliseconds(),
			FieldClientIP, c.IP(),
		}
		if chainErr != nil {
			args = append(args, FieldError, chainErr.Error())
		}
		reqLog.Log(c.UserContext(), level, "request completed", args...)

		return nil
	}
}
