package save_presence

import "errors"

var (
	// ErrPresenceNotFound возвращается, когда редактируемое присутствие не найдено
	ErrPresenceNotFound = errors.New("save_presence: presence not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_presence: internal error")
)
