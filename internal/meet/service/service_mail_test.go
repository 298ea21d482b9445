package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
)

func TestSendInviteEmailsFanOut(t *testing.T) {
	fm := newFakeMailer()
	ms := NewMailService(fm)

	req := &model.InviteEmailReq{
		Title:     "sprint review",
		Date:      "2024-11-08 15:00",
		MeetingId: "m-1",
		Participants: []model.InviteRecipient{
			{Email: "a@example.com", FirstName: "Ann"},
			{Email: "b@example.com", FirstName: "Bob"},
			{Email: "c@example.com", FirstName: "Cam"},
		},
	}

	failures := ms.SendInviteEmails(context.Background(), req, "https://api.example.com/invite-participant?token=x")
	assert.Empty(t, failures)
	assert.Len(t, fm.sent, 3)
}

func TestSendInviteEmailsCollectsFailures(t *testing.T) {
	fm := newFakeMailer()
	fm.reject["b@example.com"] = errors.New("rate limited")
	ms := NewMailService(fm)

	req := &model.InviteEmailReq{
		Title: "sprint review",
		Participants: []model.InviteRecipient{
			{Email: "a@example.com", FirstName: "Ann"},
			{Email: "b@example.com", FirstName: "Bob"},
			{Email: "c@example.com", FirstName: "Cam"},
		},
	}

	failures := ms.SendInviteEmails(context.Background(), req, "https://link")
	require.Len(t, failures, 1)
	assert.Equal(t, "b@example.com", failures[0].Email)
	assert.Equal(t, "rate limited", failures[0].Error)
	// one rejected recipient never blocks the others
	assert.Len(t, fm.sent, 2)
}

func TestSendInviteEmailsNoRecipients(t *testing.T) {
	fm := newFakeMailer()
	ms := NewMailService(fm)

	failures := ms.SendInviteEmails(context.Background(), &model.InviteEmailReq{Title: "x"}, "https://link")
	assert.Empty(t, failures)
	assert.Empty(t, fm.sent)
}
