package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer  = "presence-booking"
	subject = "admin"
)

// Config параметры административного доступа
// Если задан PasswordHash (bcrypt), Password игнорируется
type Config struct {
	Password     string
	PasswordHash string
	Secret       []byte
	SessionTTL   time.Duration
}

// Service проверяет общий пароль администратора и выдает подписанные сессии
type Service struct {
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис административного доступа
func NewService(cfg Config, logger Logger) *Service {
	return &Service{
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет пароль и выдает токен сессии (HS256 JWT)
// Возвращает токен и момент его истечения
func (s *Service) Login(password string) (string, time.Time, error) {
	if err := s.checkPassword(password); err != nil {
		s.logger.Warn("Login: rejected: %v", err)
		return "", time.Time{}, err
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.cfg.SessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: sign session: %w", err)
	}

	s.logger.Info("Login: admin session issued, expires at %s", expiresAt.UTC().Format(time.RFC3339))
	return signed, expiresAt, nil
}

// Verify проверяет подпись и срок действия токена сессии
func (s *Service) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidSession
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}, SkipClaimsValidation: true}

	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	// Срок проверяем по собственным часам, а не по time.Now внутри jwt
	if claims.ExpiresAt == nil || !s.timeProvider.Now().Before(claims.ExpiresAt.Time) {
		return fmt.Errorf("%w: expired", ErrInvalidSession)
	}
	if claims.Subject != subject || claims.Issuer != issuer {
		return fmt.Errorf("%w: unexpected claims", ErrInvalidSession)
	}

	return nil
}

func (s *Service) checkPassword(password string) error {
	switch {
	case s.cfg.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	case s.cfg.Password != "":
		if subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) != 1 {
			return ErrInvalidCredentials
		}
		return nil
	default:
		return ErrNotConfigured
	}
}
