package update_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-PresenceBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*updateReservation.Response)
	return resp, args.Error(1)
}

func doRequest(h *Handler, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/"+token, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"token": token})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *updateReservation.Request) bool {
		return req.Token == "tok" && req.Input.Quantity == "4"
	})).Return(&updateReservation.Response{ID: 3, Token: "tok", Quantity: 4}, nil)

	rec := doRequest(NewHandler(uc, logger.Nop()), "tok",
		`{"firstName":"A","lastName":"B","phone":"1","quantity":"4"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.Reservation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 4, body.Quantity)
}

func TestHandle_WindowClosed(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, updateReservation.ErrMutationWindowClosed)

	rec := doRequest(NewHandler(uc, logger.Nop()), "tok", `{"quantity":1}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "mutation_window_closed", body.Reason)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, updateReservation.ErrReservationNotFound)

	rec := doRequest(NewHandler(uc, logger.Nop()), "missing", `{"quantity":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
