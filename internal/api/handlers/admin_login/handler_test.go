package admin_login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/service/auth"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
)

func newHandler() *Handler {
	svc := auth.NewService(auth.Config{
		Password:   "s3cret",
		Secret:     []byte("jwt-secret"),
		SessionTTL: time.Hour,
	}, logger.Nop())
	return NewHandler(svc, handlers.SessionCookie{Name: "admin_session"}, logger.Nop())
}

func TestHandle_SetsSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"password":"s3cret"}`))

	newHandler().Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestHandle_WrongPassword(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"password":"nope"}`))

	newHandler().Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}
