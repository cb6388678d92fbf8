package get_reservation_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/service/reservations"
	"github.com/m04kA/SMC-PresenceBooking/pkg/icsexport"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
)

type stubService struct {
	res *domain.Reservation
}

func (s stubService) GetByToken(_ context.Context, token string) (*domain.Reservation, error) {
	if s.res == nil || s.res.Token != token {
		return nil, reservations.ErrReservationNotFound
	}
	return s.res, nil
}

func doRequest(h *Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+token+"/calendar.ics", nil)
	req = mux.SetURLVars(req, map[string]string{"token": token})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_RendersEvent(t *testing.T) {
	start := time.Date(2030, 6, 1, 7, 15, 0, 0, time.UTC)
	svc := stubService{res: &domain.Reservation{
		ID: 1, Token: "tok", FirstName: "Anne", LastName: "Martin", Quantity: 2,
		SlotStartAt: start, Location: "Gare", CreatedAt: start.Add(-24 * time.Hour),
	}}

	rec := doRequest(NewHandler(svc, logger.Nop()), "tok")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, icsexport.ContentType, rec.Header().Get("Content-Type"))

	cal, err := ics.ParseCalendar(rec.Body)
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	gotStart, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))
	gotEnd, err := events[0].GetEndAt()
	require.NoError(t, err)
	assert.True(t, gotEnd.Equal(start.Add(domain.SlotDuration)))
}

func TestHandle_NotFound(t *testing.T) {
	rec := doRequest(NewHandler(stubService{}, logger.Nop()), "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
