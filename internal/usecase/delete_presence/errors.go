package delete_presence

import "errors"

var (
	// ErrPresenceNotFound возвращается, когда присутствие не найдено
	ErrPresenceNotFound = errors.New("delete_presence: presence not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_presence: internal error")
)
