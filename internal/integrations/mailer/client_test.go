package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
)

func testConfirmation() Confirmation {
	return Confirmation{
		To:        "client@example.org",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "0612345678",
		Comment:   ptr.Ptr("Fauteuil roulant"),
		Quantity:  3,
		Location:  "Gare",
		StartAt:   time.Date(2030, 6, 1, 9, 15, 0, 0, time.UTC),
		Token:     "tok-123",
		CreatedAt: time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestClient_SendConfirmation(t *testing.T) {
	var got sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		Enabled:       true,
		BaseURL:       server.URL + "/",
		APIKey:        "key",
		From:          "noreply@example.org",
		PublicBaseURL: "https://booking.example.org/",
		Timeout:       time.Second,
	}, logger.Nop())

	require.NoError(t, client.SendConfirmation(context.Background(), testConfirmation()))

	assert.Equal(t, "noreply@example.org", got.From)
	assert.Equal(t, []string{"client@example.org"}, got.To)
	assert.Contains(t, got.Text, "https://booking.example.org/reservations/tok-123")
	assert.Contains(t, got.Text, "https://booking.example.org/reservations/tok-123?action=cancel")
	assert.Contains(t, got.Text, "Téléphone : 0612345678")
	assert.Contains(t, got.Text, "Commentaire : Fauteuil roulant")
	require.Len(t, got.Attachments, 1)

	ics, err := base64.StdEncoding.DecodeString(got.Attachments[0].Content)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(ics), "BEGIN:VEVENT"))
	assert.Contains(t, string(ics), "tok-123@presence-booking")
}

func TestClient_BuildRequest_WithoutComment(t *testing.T) {
	client := NewClient(Config{Enabled: true, PublicBaseURL: "https://booking.example.org"}, logger.Nop())

	conf := testConfirmation()
	conf.Comment = nil
	req, err := client.buildRequest(conf)
	require.NoError(t, err)

	assert.Contains(t, req.Text, "Téléphone : 0612345678")
	assert.NotContains(t, req.Text, "Commentaire")
}

func TestClient_SendConfirmation_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{Enabled: true, BaseURL: server.URL, Timeout: time.Second}, logger.Nop())

	err := client.SendConfirmation(context.Background(), testConfirmation())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Disabled(t *testing.T) {
	client := NewClient(Config{}, logger.Nop())

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.SendConfirmation(context.Background(), testConfirmation()), ErrDisabled)
}
