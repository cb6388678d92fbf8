package delete_presence

// Request модель запроса на удаление присутствия
type Request struct {
	ID      int64
	Confirm bool
}

// Response результат удаления
type Response struct {
	Deleted              bool
	ConfirmationRequired bool
	AffectedReservations int
}
