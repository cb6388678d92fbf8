package save_presence

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	savePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/save_presence"
)

// PresenceRequest HTTP request model
type PresenceRequest struct {
	Location  string `json:"location"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PresenceResponse HTTP response model
type PresenceResponse struct {
	handlers.Presence
	GeneratedSlots int `json:"generatedSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PresenceRequest) ToUseCaseRequest(id *int64, confirm bool) *savePresence.Request {
	return &savePresence.Request{
		ID: id,
		Input: validation.PresenceInput{
			Location:  r.Location,
			Date:      r.Date,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		},
		Confirm: confirm,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *savePresence.Response) *PresenceResponse {
	return &PresenceResponse{
		Presence:       handlers.FromPresence(resp.Presence),
		GeneratedSlots: resp.SlotCount,
	}
}
