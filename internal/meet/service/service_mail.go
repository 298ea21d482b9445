package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/mailer"
)

/**
 * @time: 2024/11/6 22:08
 * @file: service_mail.go
 * @description: invitation mail fan-out
 */

type MailService struct {
	mailer mailer.IMailer
}

func NewMailService(m mailer.IMailer) *MailService {
	return &MailService{mailer: m}
}

// SendFailure is one recipient the gateway rejected.
type SendFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// SendInviteEmails fires all sends concurrently and waits for every one to
// settle; a failed recipient never cancels its siblings. Per-recipient
// failures come back to the caller.
func (ms *MailService) SendInviteEmails(ctx context.Context, req *model.InviteEmailReq, inviteLink string) []SendFailure {
	failures := make([]SendFailure, 0)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, recipient := range req.Participants {
		wg.Add(1)
		go func(r model.InviteRecipient) {
			defer wg.Done()

			msg := &mailer.Message{
				To:      []string{r.Email},
				Subject: req.Title,
				Html:    inviteBody(r.FirstName, req.Title, req.Date, inviteLink),
			}
			if err := ms.mailer.Send(ctx, msg); err != nil {
				log.Errorw("failed to send invite email", "email", r.Email, "error", err)
				mu.Lock()
				failures = append(failures, SendFailure{Email: r.Email, Error: err.Error()})
				mu.Unlock()
			}
		}(recipient)
	}

	wg.Wait()
	return failures
}

func inviteBody(firstName, title, date, inviteLink string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>You are invited to <strong>%s</strong> on %s.</p><p><a href=%q>Join the meeting</a></p>",
		firstName, title, date, inviteLink,
	)
}
