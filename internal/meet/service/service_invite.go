package service

import (
	"fmt"
	"net/url"
	"time"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/jwt"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

/**
 * @time: 2024/11/6 21:33
 * @file: service_invite.go
 * @description: invitation issue / redeem flow
 */

// InviteConf is the invitation link configuration.
type InviteConf struct {
	GatewayUrl string        // external API gateway base url, embedded in invitation links
	WebBaseUrl string        // dashboard base url, redeem redirects here
	Ttl        time.Duration // invitation token lifetime
}

type InviteService struct {
	meetingService     *MeetingService
	participantService *ParticipantService
	secretKey          string
	conf               InviteConf
}

func NewInviteService(
	meetingService *MeetingService,
	participantService *ParticipantService,
	secretKey string,
	conf InviteConf,
) *InviteService {
	if conf.Ttl <= 0 {
		conf.Ttl = 24 * time.Hour
	}
	return &InviteService{
		meetingService:     meetingService,
		participantService: participantService,
		secretKey:          secretKey,
		conf:               conf,
	}
}

// IssueInvite produces a shareable link embedding a signed invitation token
// for the meeting, optionally bound to a target user.
func (is *InviteService) IssueInvite(meetingId, targetUserId string) (*model.InviteResp, error) {
	if meetingId == "" {
		return nil, ErrMeetingIdRequired
	}
	if _, err := is.meetingService.GetMeeting(meetingId); err != nil {
		return nil, err
	}

	token, err := jwt.GenInviteToken(meetingId, targetUserId, []byte(is.secretKey), is.conf.Ttl)
	if err != nil {
		log.Errorw("failed to sign invite token", "meetingId", meetingId, "error", err)
		return nil, err
	}

	link := fmt.Sprintf("%s/invite-participant?token=%s", is.conf.GatewayUrl, url.QueryEscape(token))
	return &model.InviteResp{InvitationLink: link}, nil
}

// RedeemResult reports the outcome of a redeemed invitation.
type RedeemResult struct {
	MeetingId   string
	RedirectUrl string
	AlreadyIn   bool
}

// RedeemInvite verifies the token, checks the meeting's participant
// collection exists, then joins. The token itself is the credential; the
// joining user comes from the token (or redeemUserId for open links).
func (is *InviteService) RedeemInvite(token, redeemUserId string) (*RedeemResult, error) {
	claims, err := jwt.ParseInviteToken(token, is.secretKey)
	if err != nil {
		return nil, ErrInvalidInviteToken
	}

	userId := claims.UserId
	if userId == "" {
		userId = redeemUserId
	}
	if userId == "" {
		return nil, ErrInvalidInviteToken
	}

	participants, err := is.participantService.participantRepo.ListParticipantsByMeeting(claims.MeetingId)
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return nil, ErrParticipantNotFound
	}

	joined, err := is.participantService.JoinMeeting(claims.MeetingId, userId)
	if err != nil {
		return nil, err
	}

	return &RedeemResult{
		MeetingId:   claims.MeetingId,
		RedirectUrl: fmt.Sprintf("%s/meetings/%s", is.conf.WebBaseUrl, claims.MeetingId),
		AlreadyIn:   !joined,
	}, nil
}
