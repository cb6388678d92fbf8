package list_slots

import (
	"strings"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []handlers.Slot `json:"slots"`
}

// ParseFilter разбирает необязательные фильтры date и location
func ParseFilter(dateStr, locationStr string) (*types.Date, *string, error) {
	var (
		date     *types.Date
		location *string
	)

	if dateStr != "" {
		d, err := types.ParseDate(dateStr)
		if err != nil {
			return nil, nil, &validation.Error{Field: "date", Reason: validation.ReasonInvalidDate}
		}
		date = &d
	}

	if trimmed := strings.TrimSpace(locationStr); trimmed != "" {
		location = &trimmed
	}

	return date, location, nil
}

// FromSlots конвертирует слоты в HTTP response
func FromSlots(slots []*domain.Slot) *SlotsResponse {
	out := make([]handlers.Slot, len(slots))
	for i, s := range slots {
		out[i] = handlers.FromSlot(s)
	}
	return &SlotsResponse{Slots: out}
}
