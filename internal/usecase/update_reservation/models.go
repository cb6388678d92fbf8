package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Request модель запроса на изменение бронирования
type Request struct {
	Token string
	Input validation.ReservationInput
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	Token     string
	SlotID    int64
	StartAt   time.Time
	Location  string
	Date      types.Date
	FirstName string
	LastName  string
	Phone     string
	Quantity  int
	Comment   *string
	CreatedAt time.Time
}
