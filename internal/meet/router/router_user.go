package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
)

/**
 * @time: 2024/11/7 21:55
 * @file: router_user.go
 * @description: user routes
 */

func (rt *Router) userRouter(api fiber.Router, auth fiber.Handler) {

	user := api.Group("/user")
	user.Post("/register", rt.register)
	user.Post("/login", rt.login)
	user.Post("/refresh", rt.refresh)
	user.Post("/logout", auth, rt.logout)
	user.Get("/info", auth, rt.userInfo)
	user.All("/register", methodNotAllowed)
	user.All("/login", methodNotAllowed)
	user.All("/refresh", methodNotAllowed)
	user.All("/logout", methodNotAllowed)
	user.All("/info", methodNotAllowed)
}

func (rt *Router) register(c *fiber.Ctx) error {
	var req model.Register
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	if err := rt.Services.User.Register(&req); err != nil {
		return mapServiceErr(c, err)
	}

	c.Status(fiber.StatusCreated)
	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) login(c *fiber.Ctx) error {
	var req model.Login
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	resp, err := rt.Services.User.Login(&req)
	if err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.DETAIL, resp)
	return nil
}

// refresh mints a new token pair. Only the refresh token is consulted, any
// userId in the body is ignored.
func (rt *Router) refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}
	if req.RefreshToken == "" {
		return httpx.WithRepErr(c, httpx.InValidRefreshToken, c.Path())
	}

	pair, err := rt.Services.User.Refresh(req.RefreshToken)
	if err != nil {
		return httpx.WithRepErr(c, httpx.InValidRefreshToken, c.Path())
	}

	c.Locals(middleware.DETAIL, pair)
	return nil
}

func (rt *Router) logout(c *fiber.Ctx) error {
	caller := middleware.CallerIdentity(c)
	if err := rt.Services.User.Logout(caller.UserId); err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) userInfo(c *fiber.Ctx) error {
	caller := middleware.CallerIdentity(c)
	info, err := rt.Services.User.GetUserInfo(caller.UserId)
	if err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.DETAIL, info)
	return nil
}
