package handlers

import (
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

// Slot представление слота в ответах API
type Slot struct {
	ID         int64     `json:"id"`
	PresenceID int64     `json:"presenceId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Location   string    `json:"location"`
	Date       string    `json:"date"`
}

// FromSlot конвертирует слот в представление API
func FromSlot(s *domain.Slot) Slot {
	return Slot{
		ID:         s.ID,
		PresenceID: s.PresenceID,
		StartAt:    s.StartAt,
		EndAt:      s.EndAt(),
		Location:   s.Location,
		Date:       s.Date.String(),
	}
}

// Reservation представление бронирования в ответах API
// Token отдается только владельцу бронирования
type Reservation struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token,omitempty"`
	SlotID    int64     `json:"slotId"`
	StartAt   time.Time `json:"startAt"`
	Location  string    `json:"location"`
	Date      string    `json:"date"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Quantity  int       `json:"quantity"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromReservation конвертирует бронирование в представление API без токена
func FromReservation(r *domain.Reservation) Reservation {
	return Reservation{
		ID:        r.ID,
		SlotID:    r.SlotID,
		StartAt:   r.SlotStartAt,
		Location:  r.Location,
		Date:      r.Date.String(),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Quantity:  r.Quantity,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Presence представление присутствия в ответах API
type Presence struct {
	ID               int64  `json:"id"`
	Location         string `json:"location"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	SlotCount        *int   `json:"slotCount,omitempty"`
	ReservationCount *int   `json:"reservationCount,omitempty"`
}

// FromPresence конвертирует присутствие в представление API
func FromPresence(p *domain.Presence) Presence {
	return Presence{
		ID:        p.ID,
		Location:  p.Location,
		Date:      p.Date.String(),
		StartTime: p.StartTime.String(),
		EndTime:   p.EndTime.String(),
	}
}

// FromPresenceWithCounts конвертирует присутствие со счетчиками
func FromPresenceWithCounts(p *domain.PresenceWithCounts) Presence {
	out := FromPresence(&p.Presence)
	slots, reservations := p.SlotCount, p.ReservationCount
	out.SlotCount = &slots
	out.ReservationCount = &reservations
	return out
}
