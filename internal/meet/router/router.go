package router

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/service"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/version"
)

/**
 * @time: 2024/11/7 20:15
 * @file: router.go
 * @description: http routes
 */

type Router struct {
	Http     *httpx.Http
	Services *service.Services
}

func NewRouter(cfg *httpx.Http, services *service.Services) *Router {
	return &Router{
		Http:     cfg,
		Services: services,
	}
}

func (rt *Router) Router(logger *zap.Logger) *fiber.App {

	app := fiber.New(fiber.Config{
		BodyLimit:    rt.Http.BodyLimit * 1024 * 1024,
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
	})

	// panic recover
	app.Use(middleware.ExceptionMiddleware)

	app.Use(middleware.CorsMiddleware())

	// unified response envelope
	app.Use(middleware.UnifiedResponseMiddleware())

	if rt.Http.AccessLog {
		app.Use(httpx.AccessLogFormat(logger))
	}

	if rt.Http.PProf {
		app.Use(pprof.New(pprof.Config{Prefix: "/debug"}))
	}

	if rt.Http.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Services.User)

	contextPath := rt.Http.ContextPath
	if contextPath == "" {
		contextPath = "/api/v1"
	}
	api := app.Group(contextPath)

	rt.userRouter(api, auth)
	rt.meetingRouter(api, auth)
	rt.participantRouter(api, auth)
	rt.inviteRouter(api, auth)

	return app
}

// mapServiceErr converts a service sentinel into its catalogue response.
// Unknown errors come back as an internal error.
func mapServiceErr(c *fiber.Ctx, err error) error {
	resp := httpx.InternalError
	switch err {
	case service.ErrTitleRequired:
		resp = httpx.MeetingTitleIsEmpty
	case service.ErrMeetingIdRequired:
		resp = httpx.MeetingIdIsEmpty
	case service.ErrInvalidStatus, service.ErrInvalidStatusTransition:
		resp = httpx.InvalidStatusParameter
	case service.ErrMeetingNotFound:
		resp = httpx.MeetingNotFound
	case service.ErrParticipantNotFound:
		resp = httpx.ParticipantNotFound
	case service.ErrInvalidInviteToken:
		resp = httpx.InvalidInviteToken
	case service.ErrUserExists:
		resp = httpx.UserAlreadyExist
	case service.ErrUserNotFound:
		resp = httpx.UserNotExist
	case service.ErrIncorrectPassword:
		resp = httpx.UserIncorrectPassword
	case service.ErrCredentialsRequired:
		resp = httpx.UsernameArePasswordIsRequired
	}
	return httpx.WithRepErr(c, resp, c.Path())
}

// methodNotAllowed is the fallback for a known path hit with an unsupported
// verb. It answers before any credential check.
func methodNotAllowed(c *fiber.Ctx) error {
	return httpx.WithRepErr(c, httpx.MethodNotAllowed, c.Path())
}

// optionalAuth runs the session gate only when the caller presented
// credentials. Routes behind it authenticate anonymous requests as nobody
// instead of rejecting them.
func optionalAuth(auth fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return auth(c)
	}
}
