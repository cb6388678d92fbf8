package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestService_LoginPlaintext(t *testing.T) {
	clock := &fixedClock{now: time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewService(Config{
		Password:   "s3cret",
		Secret:     []byte("signing-key"),
		SessionTTL: time.Hour,
	}, logger.Nop()).WithTimeProvider(clock)

	_, _, err := svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, expiresAt, err := svc.Login("s3cret")
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), expiresAt)
	assert.NoError(t, svc.Verify(token))

	clock.now = clock.now.Add(time.Hour)
	assert.ErrorIs(t, svc.Verify(token), ErrInvalidSession)
}

func TestService_LoginBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(Config{
		Password:     "ignored",
		PasswordHash: string(hash),
		Secret:       []byte("k"),
		SessionTTL:   time.Minute,
	}, logger.Nop())

	_, _, err = svc.Login("ignored")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, _, err := svc.Login("hunter2")
	require.NoError(t, err)
	assert.NoError(t, svc.Verify(token))
}

func TestService_Verify_RejectsForeignSignature(t *testing.T) {
	issuerSvc := NewService(Config{Password: "p", Secret: []byte("one"), SessionTTL: time.Hour}, logger.Nop())
	verifier := NewService(Config{Password: "p", Secret: []byte("two"), SessionTTL: time.Hour}, logger.Nop())

	token, _, err := issuerSvc.Login("p")
	require.NoError(t, err)

	assert.ErrorIs(t, verifier.Verify(token), ErrInvalidSession)
	assert.ErrorIs(t, verifier.Verify(""), ErrInvalidSession)
	assert.ErrorIs(t, verifier.Verify("not.a.jwt"), ErrInvalidSession)
}

func TestService_NotConfigured(t *testing.T) {
	svc := NewService(Config{Secret: []byte("k"), SessionTTL: time.Hour}, logger.Nop())

	_, _, err := svc.Login("")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
