package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
)

func newMeetingService() (*MeetingService, *fakeMeetingRepo, *fakeParticipantRepo) {
	participants := newFakeParticipantRepo()
	meetings := newFakeMeetingRepo(participants)
	return NewMeetingService(meetings), meetings, participants
}

func TestCreateMeetingAutoJoinsOwner(t *testing.T) {
	ms, _, participants := newMeetingService()

	meeting, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)
	require.NotEmpty(t, meeting.MeetingId)
	assert.Equal(t, model.MeetingStatusIdle, meeting.Status)
	assert.Equal(t, "owner-1", meeting.UserId)

	rows, err := participants.ListParticipantsByMeeting(meeting.MeetingId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "owner-1", rows[0].UserId)
	assert.Equal(t, model.ParticipantStatusAccept, rows[0].Status)
}

func TestCreateMeetingRequiresTitle(t *testing.T) {
	ms, meetings, _ := newMeetingService()

	_, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, meetings.meetings)
}

func TestCreateMeetingRejectsUnknownStatus(t *testing.T) {
	ms, _, _ := newMeetingService()

	_, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "x", Status: "PAUSED"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetMeetingNotFound(t *testing.T) {
	ms, _, _ := newMeetingService()

	_, err := ms.GetMeeting("absent")
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestUpdateMeetingStatusTransitions(t *testing.T) {
	ms, meetings, _ := newMeetingService()
	meeting, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	err = ms.UpdateMeeting(meeting.MeetingId, "owner-1", &model.UpdateMeetingReq{Status: model.MeetingStatusLive})
	require.NoError(t, err)
	got, _ := meetings.GetMeeting(meeting.MeetingId)
	assert.Equal(t, model.MeetingStatusLive, got.Status)

	// a live meeting cannot go back to idle
	err = ms.UpdateMeeting(meeting.MeetingId, "owner-1", &model.UpdateMeetingReq{Status: model.MeetingStatusIdle})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	err = ms.UpdateMeeting(meeting.MeetingId, "owner-1", &model.UpdateMeetingReq{Status: model.MeetingStatusEnd})
	require.NoError(t, err)
	got, _ = meetings.GetMeeting(meeting.MeetingId)
	assert.Equal(t, model.MeetingStatusEnd, got.Status)
}

func TestUpdateMeetingByNonOwnerMatchesNoRows(t *testing.T) {
	ms, meetings, _ := newMeetingService()
	meeting, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	err = ms.UpdateMeeting(meeting.MeetingId, "intruder", &model.UpdateMeetingReq{Title: "hijacked"})
	require.NoError(t, err)

	got, _ := meetings.GetMeeting(meeting.MeetingId)
	assert.Equal(t, "standup", got.Title)
}

func TestDeleteMeetingIdempotent(t *testing.T) {
	ms, _, _ := newMeetingService()
	meeting, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "standup"})
	require.NoError(t, err)

	require.NoError(t, ms.DeleteMeeting(meeting.MeetingId))
	require.NoError(t, ms.DeleteMeeting(meeting.MeetingId))
	require.NoError(t, ms.DeleteMeeting("never-existed"))
}

func TestListMeetingsScopedToParticipant(t *testing.T) {
	ms, _, _ := newMeetingService()
	_, err := ms.CreateMeeting("owner-1", &model.CreateMeetingReq{Title: "mine"})
	require.NoError(t, err)
	_, err = ms.CreateMeeting("owner-2", &model.CreateMeetingReq{Title: "theirs"})
	require.NoError(t, err)

	mine, err := ms.ListMeetings("owner-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)
}
