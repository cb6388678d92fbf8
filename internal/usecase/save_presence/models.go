package save_presence

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

// Request модель запроса на создание (ID == nil) или изменение присутствия
type Request struct {
	ID      *int64
	Input   validation.PresenceInput
	Confirm bool // подтверждение удаления существующих бронирований
}

// Response результат сохранения
// При ConfirmationRequired ничего не изменено, AffectedReservations - число
// бронирований, которые будут удалены
type Response struct {
	Presence             *domain.Presence
	SlotCount            int
	ConfirmationRequired bool
	AffectedReservations int
}
