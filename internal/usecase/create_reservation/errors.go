package create_reservation

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не существует или уже начался
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
