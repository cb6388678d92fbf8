package create_presence_series

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

// Request модель запроса на создание серии присутствий
// Input.Date - дата первого повторения (DTSTART),
// Rule - правило повторения RFC 5545, например FREQ=WEEKLY;BYDAY=SA;COUNT=8
type Request struct {
	Input validation.PresenceInput
	Rule  string
}

// Response созданные присутствия в хронологическом порядке
type Response struct {
	Presences []*domain.Presence
}
