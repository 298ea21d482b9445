package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
)

/**
 * @time: 2024/11/7 20:40
 * @file: router_meeting.go
 * @description: meeting routes
 */

func (rt *Router) meetingRouter(api fiber.Router, auth fiber.Handler) {

	api.Post("/meetings", auth, rt.createMeeting)
	api.Get("/meetings", auth, rt.listMeetings)
	// a collection PUT/DELETE has no id to act on
	api.Put("/meetings", rt.meetingIdMissing)
	api.Delete("/meetings", rt.meetingIdMissing)
	api.All("/meetings", methodNotAllowed)

	api.Get("/meetings/:id", auth, rt.getMeeting)
	api.Put("/meetings/:id", auth, rt.updateMeeting)
	api.Delete("/meetings/:id", auth, rt.deleteMeeting)
	api.All("/meetings/:id", methodNotAllowed)
}

func (rt *Router) meetingIdMissing(c *fiber.Ctx) error {
	return httpx.WithRepErr(c, httpx.MeetingIdIsEmpty, c.Path())
}

func (rt *Router) createMeeting(c *fiber.Ctx) error {
	var req model.CreateMeetingReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	caller := middleware.CallerIdentity(c)
	meeting, err := rt.Services.Meeting.CreateMeeting(caller.UserId, &req)
	if err != nil {
		return mapServiceErr(c, err)
	}

	c.Status(fiber.StatusCreated)
	c.Locals(middleware.DETAIL, meeting)
	return nil
}

func (rt *Router) listMeetings(c *fiber.Ctx) error {
	caller := middleware.CallerIdentity(c)
	meetings, err := rt.Services.Meeting.ListMeetings(caller.UserId)
	if err != nil {
		return mapServiceErr(c, err)
	}

	if meetings == nil {
		meetings = []model.Meeting{}
	}
	c.Locals(middleware.DETAIL, meetings)
	return nil
}

func (rt *Router) getMeeting(c *fiber.Ctx) error {
	meeting, err := rt.Services.Meeting.GetMeeting(c.Params("id"))
	if err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.DETAIL, meeting)
	return nil
}

func (rt *Router) updateMeeting(c *fiber.Ctx) error {
	var req model.UpdateMeetingReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	caller := middleware.CallerIdentity(c)
	if err := rt.Services.Meeting.UpdateMeeting(c.Params("id"), caller.UserId, &req); err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

// deleteMeeting answers 204 whether or not the meeting existed.
func (rt *Router) deleteMeeting(c *fiber.Ctx) error {
	if err := rt.Services.Meeting.DeleteMeeting(c.Params("id")); err != nil {
		return mapServiceErr(c, err)
	}
	c.Status(fiber.StatusNoContent)
	return nil
}
