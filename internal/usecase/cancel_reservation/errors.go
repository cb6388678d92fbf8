package cancel_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование с токеном не найдено
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrMutationWindowClosed возвращается, если слот уже начался
	ErrMutationWindowClosed = errors.New("cancel_reservation: mutation window closed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
