package list_reservations

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	Reservations []handlers.Reservation `json:"reservations"`
	Offset       int                    `json:"offset"`
}

// ToFilter формирует фильтр из query параметров date, location, limit, offset
func ToFilter(q url.Values) (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter

	if raw := q.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			return filter, &validation.Error{Field: "date", Reason: validation.ReasonInvalidDate}
		}
		filter.Date = &date
	}

	if raw := strings.TrimSpace(q.Get("location")); raw != "" {
		filter.Location = &raw
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, &validation.Error{Field: "limit", Reason: validation.ReasonInvalidQuantity}
		}
		filter.Limit = limit
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, &validation.Error{Field: "offset", Reason: validation.ReasonInvalidQuantity}
		}
		filter.Offset = offset
	}

	return filter, nil
}
