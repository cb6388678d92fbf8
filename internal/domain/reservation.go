package domain

import (
	"time"

	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Reservation бронирование одного слота
// Token - единственный секрет для просмотра, изменения и отмены
type Reservation struct {
	ID        int64
	SlotID    int64
	FirstName string
	LastName  string
	Phone     string
	Quantity  int
	Comment   *string
	Token     string
	CreatedAt time.Time

	// Денормализованные данные слота и присутствия (заполняются при чтении)
	SlotStartAt time.Time
	PresenceID  int64
	Location    string
	Date        types.Date
}

// IsMutable возвращает true, если бронирование еще можно изменить или отменить
// Окно закрывается ровно в момент начала слота
func (r *Reservation) IsMutable(now time.Time) bool {
	return now.Before(r.SlotStartAt)
}

// ReservationFields поля бронирования, которые задает клиент
type ReservationFields struct {
	FirstName string
	LastName  string
	Phone     string
	Quantity  int
	Comment   *string
}

// ReservationFilter фильтр админского списка бронирований
type ReservationFilter struct {
	Date     *types.Date
	Location *string
	Limit    int
	Offset   int
}
