package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле администратора
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidSession возвращается, если сессия отсутствует, подделана или истекла
	ErrInvalidSession = errors.New("auth: invalid session")

	// ErrNotConfigured возвращается, если пароль администратора не задан
	ErrNotConfigured = errors.New("auth: admin password is not configured")
)
