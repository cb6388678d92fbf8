package create_presence_series

import (
	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	createSeries "github.com/m04kA/SMC-PresenceBooking/internal/usecase/create_presence_series"
)

// SeriesRequest HTTP request model
// Date - дата первого присутствия, Rule - RRULE (FREQ=WEEKLY;COUNT=4)
type SeriesRequest struct {
	Location  string `json:"location"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Rule      string `json:"rule"`
}

// SeriesResponse HTTP response model
type SeriesResponse struct {
	Presences []handlers.Presence `json:"presences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SeriesRequest) ToUseCaseRequest() *createSeries.Request {
	return &createSeries.Request{
		Input: validation.PresenceInput{
			Location:  r.Location,
			Date:      r.Date,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		},
		Rule: r.Rule,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSeries.Response) *SeriesResponse {
	out := &SeriesResponse{Presences: make([]handlers.Presence, len(resp.Presences))}
	for i, p := range resp.Presences {
		out.Presences[i] = handlers.FromPresence(p)
	}
	return out
}
