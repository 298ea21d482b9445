package service

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/jwt"
)

const testSecret = "invite-test-secret"

func newInviteService() (*InviteService, *fakeMeetingRepo, *fakeParticipantRepo) {
	participants := newFakeParticipantRepo()
	meetings := newFakeMeetingRepo(participants)
	ms := NewMeetingService(meetings)
	ps := NewParticipantService(participants)
	is := NewInviteService(ms, ps, testSecret, InviteConf{
		GatewayUrl: "https://api.example.com",
		WebBaseUrl: "https://app.example.com",
		Ttl:        time.Hour,
	})
	return is, meetings, participants
}

func TestIssueInviteLink(t *testing.T) {
	is, _, _ := newInviteService()
	meeting, err := is.meetingService.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	resp, err := is.IssueInvite(meeting.MeetingId, "invitee-1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.InvitationLink, "https://api.example.com/invite-participant?token="), resp.InvitationLink)

	u, err := url.Parse(resp.InvitationLink)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)

	claims, err := jwt.ParseInviteToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, meeting.MeetingId, claims.MeetingId)
	assert.Equal(t, "invitee-1", claims.UserId)
}

func TestIssueInviteUnknownMeeting(t *testing.T) {
	is, _, _ := newInviteService()

	_, err := is.IssueInvite("absent", "invitee-1")
	assert.ErrorIs(t, err, ErrMeetingNotFound)

	_, err = is.IssueInvite("", "invitee-1")
	assert.ErrorIs(t, err, ErrMeetingIdRequired)
}

func TestRedeemInviteJoins(t *testing.T) {
	is, _, participants := newInviteService()
	meeting, err := is.meetingService.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	resp, err := is.IssueInvite(meeting.MeetingId, "invitee-1")
	require.NoError(t, err)
	u, _ := url.Parse(resp.InvitationLink)
	token := u.Query().Get("token")

	result, err := is.RedeemInvite(token, "")
	require.NoError(t, err)
	assert.Equal(t, meeting.MeetingId, result.MeetingId)
	assert.Equal(t, "https://app.example.com/meetings/"+meeting.MeetingId, result.RedirectUrl)
	assert.False(t, result.AlreadyIn)

	rows, _ := participants.ListParticipantsByMeeting(meeting.MeetingId)
	assert.Len(t, rows, 2) // owner + invitee
}

func TestRedeemInviteAlreadyParticipant(t *testing.T) {
	is, _, participants := newInviteService()
	meeting, err := is.meetingService.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	resp, err := is.IssueInvite(meeting.MeetingId, "owner-1")
	require.NoError(t, err)
	u, _ := url.Parse(resp.InvitationLink)

	result, err := is.RedeemInvite(u.Query().Get("token"), "")
	require.NoError(t, err)
	assert.True(t, result.AlreadyIn)

	rows, _ := participants.ListParticipantsByMeeting(meeting.MeetingId)
	assert.Len(t, rows, 1)
}

func TestRedeemInviteOpenLinkUsesCaller(t *testing.T) {
	is, _, participants := newInviteService()
	meeting, err := is.meetingService.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	// open link: no user bound inside the token
	resp, err := is.IssueInvite(meeting.MeetingId, "")
	require.NoError(t, err)
	u, _ := url.Parse(resp.InvitationLink)
	token := u.Query().Get("token")

	// nobody identified at redeem time
	_, err = is.RedeemInvite(token, "")
	assert.ErrorIs(t, err, ErrInvalidInviteToken)

	result, err := is.RedeemInvite(token, "walk-in")
	require.NoError(t, err)
	assert.False(t, result.AlreadyIn)

	rows, _ := participants.ListParticipantsByMeeting(meeting.MeetingId)
	assert.Len(t, rows, 2)
}

func TestRedeemInviteBadToken(t *testing.T) {
	is, _, _ := newInviteService()

	_, err := is.RedeemInvite("not-a-token", "u-1")
	assert.ErrorIs(t, err, ErrInvalidInviteToken)

	// a session token is not an invitation token
	aToken, _, err := jwt.GenToken("u-1", []byte(testSecret), time.Hour, 2*time.Hour)
	require.NoError(t, err)
	_, err = is.RedeemInvite(aToken, "u-1")
	assert.ErrorIs(t, err, ErrInvalidInviteToken)
}

func TestRedeemInviteEmptyMeeting(t *testing.T) {
	is, meetings, _ := newInviteService()
	meeting, err := is.meetingService.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	resp, err := is.IssueInvite(meeting.MeetingId, "invitee-1")
	require.NoError(t, err)
	u, _ := url.Parse(resp.InvitationLink)
	token := u.Query().Get("token")

	// meeting deleted after the invite went out
	require.NoError(t, meetings.DeleteMeeting(meeting.MeetingId))
	rows, err := is.participantService.participantRepo.ListParticipantsByMeeting(meeting.MeetingId)
	require.NoError(t, err)
	for _, p := range rows {
		require.NoError(t, is.participantService.DeleteParticipant(p.ParticipantId))
	}

	_, err = is.RedeemInvite(token, "")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
