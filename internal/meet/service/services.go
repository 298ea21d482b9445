package service

import (
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/repo"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/mailer"
)

/**
 * @time: 2024/11/5 19:02
 * @file: services.go
 * @description: service aggregate
 */

type Services struct {
	User        *UserService
	Meeting     *MeetingService
	Participant *ParticipantService
	Invite      *InviteService
	Mail        *MailService
}

func NewServices(repos *repo.Repositories, auth httpx.Auth, inviteConf InviteConf, m mailer.IMailer) *Services {
	meetingService := NewMeetingService(repos.Meeting)
	participantService := NewParticipantService(repos.Participant)
	return &Services{
		User:        NewUserService(repos.User, auth),
		Meeting:     meetingService,
		Participant: participantService,
		Invite:      NewInviteService(meetingService, participantService, auth.SecretKey, inviteConf),
		Mail:        NewMailService(m),
	}
}
