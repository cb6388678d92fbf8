package create_reservation

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	createReservation "github.com/m04kA/SMC-PresenceBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Phone     string              `json:"phone"`
	Quantity  handlers.FlexString `json:"quantity"`
	Comment   string              `json:"comment"`
	Email     string              `json:"email"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	handlers.Reservation
	Notified bool `json:"notified"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(slotID int64) *createReservation.Request {
	return &createReservation.Request{
		SlotID: slotID,
		Input: validation.ReservationInput{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
			Quantity:  string(r.Quantity),
			Comment:   r.Comment,
			Email:     r.Email,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation: handlers.Reservation{
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
		},
		Notified: resp.Notified,
	}
}
