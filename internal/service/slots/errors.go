package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден или уже начался
	ErrSlotNotFound = errors.New("slots: slot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
