package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

func validReservationInput() ReservationInput {
	return ReservationInput{
		FirstName: "Marie",
		LastName:  "Curie",
		Phone:     "0601020304",
		Quantity:  "2",
	}
}

func requireReason(t *testing.T, err error, field string, reason Reason) {
	t.Helper()

	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	assert.Equal(t, field, verr.Field)
	assert.Equal(t, reason, verr.Reason)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateReservation_OK(t *testing.T) {
	in := validReservationInput()
	in.FirstName = "  Marie "
	in.Comment = "deux cartons"
	in.Email = "marie@example.org"

	out, err := ValidateReservation(in)
	require.NoError(t, err)

	assert.Equal(t, "Marie", out.Fields.FirstName)
	assert.Equal(t, 2, out.Fields.Quantity)
	require.NotNil(t, out.Fields.Comment)
	assert.Equal(t, "deux cartons", *out.Fields.Comment)
	require.NotNil(t, out.Email)
	assert.Equal(t, "marie@example.org", *out.Email)
}

func TestValidateReservation_OptionalFieldsOmitted(t *testing.T) {
	out, err := ValidateReservation(validReservationInput())
	require.NoError(t, err)

	assert.Nil(t, out.Fields.Comment)
	assert.Nil(t, out.Email)
}

func TestValidateReservation_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ReservationInput)
		field  string
		reason Reason
	}{
		{"missing first name", func(in *ReservationInput) { in.FirstName = " " }, "firstName", ReasonRequired},
		{"missing last name", func(in *ReservationInput) { in.LastName = "" }, "lastName", ReasonRequired},
		{"missing phone", func(in *ReservationInput) { in.Phone = "" }, "phone", ReasonRequired},
		{"missing quantity", func(in *ReservationInput) { in.Quantity = "" }, "quantity", ReasonRequired},
		{"zero quantity", func(in *ReservationInput) { in.Quantity = "0" }, "quantity", ReasonInvalidQuantity},
		{"negative quantity", func(in *ReservationInput) { in.Quantity = "-3" }, "quantity", ReasonInvalidQuantity},
		{"non numeric quantity", func(in *ReservationInput) { in.Quantity = "two" }, "quantity", ReasonInvalidQuantity},
		{"fractional quantity", func(in *ReservationInput) { in.Quantity = "1.5" }, "quantity", ReasonInvalidQuantity},
		{"bad email", func(in *ReservationInput) { in.Email = "not-an-email" }, "email", ReasonInvalidEmail},
		{"long comment", func(in *ReservationInput) { in.Comment = strings.Repeat("x", 501) }, "comment", ReasonTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validReservationInput()
			tc.mutate(&in)

			_, err := ValidateReservation(in)
			requireReason(t, err, tc.field, tc.reason)
		})
	}
}

func TestValidatePresence_OK(t *testing.T) {
	fields, err := ValidatePresence(PresenceInput{
		Location:  " Gare ",
		Date:      "2024-09-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gare", fields.Location)
	assert.Equal(t, "2024-09-01", fields.Date.String())
	assert.Equal(t, types.TimeString("09:00"), fields.StartTime)
	assert.Equal(t, types.TimeString("10:00"), fields.EndTime)
}

func TestValidatePresence_Failures(t *testing.T) {
	base := PresenceInput{Location: "Gare", Date: "2024-09-01", StartTime: "09:00", EndTime: "10:00"}

	cases := []struct {
		name   string
		mutate func(*PresenceInput)
		field  string
		reason Reason
	}{
		{"missing location", func(in *PresenceInput) { in.Location = "" }, "location", ReasonRequired},
		{"missing date", func(in *PresenceInput) { in.Date = "" }, "date", ReasonRequired},
		{"bad date", func(in *PresenceInput) { in.Date = "01/09/2024" }, "date", ReasonInvalidDate},
		{"bad start", func(in *PresenceInput) { in.StartTime = "9h" }, "startTime", ReasonInvalidTime},
		{"bad end", func(in *PresenceInput) { in.EndTime = "25:00" }, "endTime", ReasonInvalidTime},
		{"equal times", func(in *PresenceInput) { in.EndTime = "09:00" }, "endTime", ReasonInvalidTimeRange},
		{"end before start", func(in *PresenceInput) { in.EndTime = "08:00" }, "endTime", ReasonInvalidTimeRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)

			_, err := ValidatePresence(in)
			requireReason(t, err, tc.field, tc.reason)
		})
	}
}
