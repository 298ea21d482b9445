package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
)

/**
 * @time: 2024/11/7 21:05
 * @file: router_participant.go
 * @description: participant routes
 */

func (rt *Router) participantRouter(api fiber.Router, auth fiber.Handler) {

	api.Get("/participants", auth, rt.listParticipants)
	api.Put("/participants", rt.participantIdMissing)
	api.Delete("/participants", rt.participantIdMissing)
	api.All("/participants", methodNotAllowed)

	api.Get("/participants/:id", auth, rt.getParticipant)
	api.Put("/participants/:id", auth, rt.updateParticipant)
	api.Delete("/participants/:id", auth, rt.deleteParticipant)
	api.All("/participants/:id", methodNotAllowed)
}

func (rt *Router) participantIdMissing(c *fiber.Ctx) error {
	return httpx.WithRepErr(c, httpx.ParticipantIdIsEmpty, c.Path())
}

// listParticipants returns the caller's own participation rows, most recent
// first.
func (rt *Router) listParticipants(c *fiber.Ctx) error {
	caller := middleware.CallerIdentity(c)
	participants, err := rt.Services.Participant.ListParticipants(caller.UserId)
	if err != nil {
		return mapServiceErr(c, err)
	}

	if participants == nil {
		participants = []model.Participant{}
	}
	c.Locals(middleware.DETAIL, participants)
	return nil
}

func (rt *Router) getParticipant(c *fiber.Ctx) error {
	caller := middleware.CallerIdentity(c)
	participant, err := rt.Services.Participant.GetParticipant(c.Params("id"), caller.UserId)
	if err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.DETAIL, participant)
	return nil
}

func (rt *Router) updateParticipant(c *fiber.Ctx) error {
	var req model.UpdateParticipantReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	caller := middleware.CallerIdentity(c)
	if err := rt.Services.Participant.UpdateParticipant(c.Params("id"), caller.UserId, &req); err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) deleteParticipant(c *fiber.Ctx) error {
	if err := rt.Services.Participant.DeleteParticipant(c.Params("id")); err != nil {
		return mapServiceErr(c, err)
	}
	c.Locals(middleware.OPERATION, "")
	return nil
}
