package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
)

/**
 * @time: 2024/11/7 21:30
 * @file: router_invite.go
 * @description: invitation routes
 */

func (rt *Router) inviteRouter(api fiber.Router, auth fiber.Handler) {

	api.Post("/invite-participant", auth, rt.issueInvite)
	// the redeem link carries its own credential, no session required; a
	// presented session still identifies the caller for open links
	api.Get("/invite-participant", optionalAuth(auth), rt.redeemInvite)
	api.Post("/invite-participant/emails", auth, rt.sendInviteEmails)
	api.All("/invite-participant", methodNotAllowed)
	api.All("/invite-participant/emails", methodNotAllowed)
}

func (rt *Router) issueInvite(c *fiber.Ctx) error {
	var req model.InviteReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	resp, err := rt.Services.Invite.IssueInvite(req.MeetingId, req.UserId)
	if err != nil {
		return mapServiceErr(c, err)
	}

	c.Locals(middleware.DETAIL, resp)
	return nil
}

// redeemInvite verifies the link token and joins the caller. A fresh join
// redirects to the meeting page; a repeat visit just says so.
func (rt *Router) redeemInvite(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return httpx.WithRepErr(c, httpx.InvalidInviteToken, c.Path())
	}

	// a logged-in visitor can redeem an open link, otherwise the token must
	// name the invitee
	redeemUserId := ""
	if caller := middleware.CallerIdentity(c); caller != nil {
		redeemUserId = caller.UserId
	}
	result, err := rt.Services.Invite.RedeemInvite(token, redeemUserId)
	if err != nil {
		return mapServiceErr(c, err)
	}

	if result.AlreadyIn {
		return httpx.WithRepMsg(c, httpx.Success.Code, "Already a participant")
	}
	return c.Redirect(result.RedirectUrl, fiber.StatusFound)
}

// sendInviteEmails mails the invitation link to every listed recipient and
// reports the ones the gateway rejected.
func (rt *Router) sendInviteEmails(c *fiber.Ctx) error {
	var req model.InviteEmailReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErr(c, httpx.RequestParameterParsingFailed, c.Path())
	}

	resp, err := rt.Services.Invite.IssueInvite(req.MeetingId, "")
	if err != nil {
		return mapServiceErr(c, err)
	}

	failures := rt.Services.Mail.SendInviteEmails(c.Context(), &req, resp.InvitationLink)
	if len(failures) > 0 {
		// partial failure is a failure, report every rejected recipient
		return c.Status(fiber.StatusInternalServerError).JSON(httpx.ResponseErr{
			ErrCode: httpx.InternalError.Code,
			ErrMsg:  failures,
			Path:    c.Path(),
		})
	}

	c.Locals(middleware.DETAIL, fiber.Map{
		"invitationLink": resp.InvitationLink,
		"sent":           len(req.Participants),
	})
	return nil
}
