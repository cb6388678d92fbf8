package create_presence_series

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/testutil"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/metrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

func TestExpandRule(t *testing.T) {
	first := types.NewDate(2030, time.June, 1) // суббота

	dates, err := expandRule("RRULE:FREQ=WEEKLY;BYDAY=SA;COUNT=3", first, 100)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, "2030-06-01", dates[0].String())
	assert.Equal(t, "2030-06-08", dates[1].String())
	assert.Equal(t, "2030-06-15", dates[2].String())

	dates, err = expandRule("FREQ=DAILY;UNTIL=20300603T000000Z", first, 100)
	require.NoError(t, err)
	assert.Len(t, dates, 3)
}

func TestExpandRule_Rejects(t *testing.T) {
	first := types.NewDate(2030, time.June, 1)

	cases := []struct {
		rule   string
		reason validation.Reason
	}{
		{"", validation.ReasonRequired},
		{"FREQ=SOMETIMES", validation.ReasonInvalidRule},
		{"FREQ=DAILY", validation.ReasonTooMany},
		{"FREQ=DAILY;COUNT=101", validation.ReasonTooMany},
	}

	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			_, err := expandRule(tc.rule, first, 100)
			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.reason, verr.Reason)
		})
	}
}

func TestExecute_CreatesSeries(t *testing.T) {
	db := testutil.NewSQLite(t)
	var m *metrics.Metrics
	svc := testutil.NewPresenceService(t, db)
	uc := NewUseCase(svc, m, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		Input: validation.PresenceInput{
			Location:  "Marché couvert",
			Date:      "2030-06-01",
			StartTime: "08:00",
			EndTime:   "09:00",
		},
		Rule: "FREQ=WEEKLY;COUNT=4",
	})
	require.NoError(t, err)
	require.Len(t, resp.Presences, 4)

	list, err := svc.ListWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, p := range list {
		assert.Equal(t, types.NewDate(2030, time.June, 1).AddDays(7*i).String(), p.Date.String())
		assert.Equal(t, 4, p.SlotCount)
	}
}
