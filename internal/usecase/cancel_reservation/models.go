package cancel_reservation

// Request модель запроса на отмену бронирования
type Request struct {
	Token string
}
