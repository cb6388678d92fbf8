package domain

import (
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Presence присутствие организатора: место и временное окно в конкретную дату
type Presence struct {
	ID        int64
	Location  string
	Date      types.Date
	StartTime types.TimeString // время начала в часовом поясе мероприятия
	EndTime   types.TimeString // время окончания (не включается в слоты)
}

// HasValidWindow возвращает true, если время начала строго раньше окончания
func (p *Presence) HasValidWindow() bool {
	return p.StartTime.IsBefore(p.EndTime)
}

// PresenceWithCounts присутствие с количеством слотов и бронирований
// Используется в админской сводке
type PresenceWithCounts struct {
	Presence
	SlotCount        int
	ReservationCount int
}

// PresenceFields изменяемые поля присутствия
type PresenceFields struct {
	Location  string
	Date      types.Date
	StartTime types.TimeString
	EndTime   types.TimeString
}
