package presences

import "errors"

var (
	// ErrPresenceNotFound возвращается, когда присутствие не найдено
	ErrPresenceNotFound = errors.New("presences: presence not found")

	// ErrConfirmationRequired возвращается, когда изменение удалит бронирования без подтверждения
	ErrConfirmationRequired = errors.New("presences: confirmation required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("presences: internal error")
)
