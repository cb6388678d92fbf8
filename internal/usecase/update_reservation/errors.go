package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование с токеном не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrMutationWindowClosed возвращается, если слот уже начался
	ErrMutationWindowClosed = errors.New("update_reservation: mutation window closed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
