package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-PresenceBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createReservation.Response)
	return resp, args.Error(1)
}

func doRequest(h *Handler, slotID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/"+slotID+"/reservations", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"slotId": slotID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	startAt := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.SlotID == 7 && req.Input.Quantity == "2" && req.Input.FirstName == "Anne"
	})).Return(&createReservation.Response{
		ID: 1, Token: "tok", SlotID: 7, StartAt: startAt, Location: "Gare",
		Date: types.NewDate(2030, time.June, 1), FirstName: "Anne", LastName: "Martin",
		Phone: "0600000000", Quantity: 2,
	}, nil)

	rec := doRequest(NewHandler(uc, logger.Nop()), "7",
		`{"firstName":"Anne","lastName":"Martin","phone":"0600000000","quantity":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body CreateReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "tok", body.Token)
	assert.Equal(t, "2030-06-01", body.Date)
	assert.True(t, body.StartAt.Equal(startAt))
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"validation", &validation.Error{Field: "quantity", Reason: validation.ReasonInvalidQuantity}, http.StatusBadRequest, "invalid_quantity"},
		{"slot not found", createReservation.ErrSlotNotFound, http.StatusNotFound, ""},
		{"internal", fmt.Errorf("%w: boom", createReservation.ErrInternal), http.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := doRequest(NewHandler(uc, logger.Nop()), "7", `{"firstName":"Anne","quantity":"0"}`)

			assert.Equal(t, tc.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantReason, body.Reason)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "abc", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "7", `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "7", `{"unknown":1}`).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
