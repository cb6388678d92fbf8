package admin_dashboard

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Presences    []handlers.Presence    `json:"presences"`
	Reservations []handlers.Reservation `json:"reservations"`
}

// FromDomain формирует сводку
func FromDomain(presences []*domain.PresenceWithCounts, reservations []*domain.Reservation) *DashboardResponse {
	resp := &DashboardResponse{
		Presences:    make([]handlers.Presence, len(presences)),
		Reservations: make([]handlers.Reservation, len(reservations)),
	}
	for i, p := range presences {
		resp.Presences[i] = handlers.FromPresenceWithCounts(p)
	}
	for i, r := range reservations {
		resp.Reservations[i] = handlers.FromReservation(r)
	}
	return resp
}
