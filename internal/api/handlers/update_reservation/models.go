package update_reservation

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	updateReservation "github.com/m04kA/SMC-PresenceBooking/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Phone     string              `json:"phone"`
	Quantity  handlers.FlexString `json:"quantity"`
	Comment   string              `json:"comment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(token string) *updateReservation.Request {
	return &updateReservation.Request{
		Token: token,
		Input: validation.ReservationInput{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
			Quantity:  string(r.Quantity),
			Comment:   r.Comment,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *handlers.Reservation {
	return &handlers.Reservation{
		ID:        resp.ID,
		Token:     resp.Token,
		SlotID:    resp.SlotID,
		StartAt:   resp.StartAt,
		Location:  resp.Location,
		Date:      resp.Date.String(),
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Phone:     resp.Phone,
		Quantity:  resp.Quantity,
		Comment:   resp.Comment,
		CreatedAt: resp.CreatedAt,
	}
}
