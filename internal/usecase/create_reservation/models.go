package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID int64
	Input  validation.ReservationInput
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Token     string // единственный секрет для управления бронированием
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
	Notified  bool // письмо-подтверждение принято почтовым API
}
