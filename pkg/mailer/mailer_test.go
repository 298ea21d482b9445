package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerSend(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewMailer(Conf{Endpoint: srv.URL, ApiKey: "re_test_key", From: "Scrutiny <noreply@scrutiny.app>"})

	err := m.Send(context.Background(), &Message{
		To:      []string{"alice@example.com"},
		Subject: "Standup",
		Html:    "<p>join</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Scrutiny <noreply@scrutiny.app>", got.From)
	assert.Equal(t, []string{"alice@example.com"}, got.To)
}

func TestMailerSendGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m := NewMailer(Conf{Endpoint: srv.URL, ApiKey: "re_test_key"})

	err := m.Send(context.Background(), &Message{To: []string{"bob@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
