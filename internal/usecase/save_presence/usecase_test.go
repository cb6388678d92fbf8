package save_presence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PresenceBooking/internal/testutil"
	savePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/save_presence"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/metrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/ptr"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
)

func setup(t *testing.T) (*savePresence.UseCase, *dbmetrics.DB) {
	t.Helper()
	db := testutil.NewSQLite(t)
	var m *metrics.Metrics
	return savePresence.NewUseCase(testutil.NewPresenceService(t, db), m, logger.Nop()), db
}

func gareInput() validation.PresenceInput {
	return validation.PresenceInput{
		Location:  "Gare",
		Date:      "2024-09-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func reserve(t *testing.T, db *dbmetrics.DB, slotID int64, token string) {
	t.Helper()
	_, err := reservationRepo.NewRepository(db, sqlbuilder.SQLite).Create(context.Background(), &domain.Reservation{
		SlotID:    slotID,
		FirstName: "A",
		LastName:  "B",
		Phone:     "1",
		Quantity:  1,
		Token:     token,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestExecute_Create(t *testing.T) {
	uc, db := setup(t)

	resp, err := uc.Execute(context.Background(), &savePresence.Request{Input: gareInput()})
	require.NoError(t, err)
	assert.False(t, resp.ConfirmationRequired)
	assert.Equal(t, 4, resp.SlotCount)

	slots := testutil.SlotsOf(t, db, resp.Presence.ID)
	require.Len(t, slots, 4)
	assert.Equal(t, time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC), slots[0].StartAt)
	assert.Equal(t, time.Date(2024, 9, 1, 9, 45, 0, 0, time.UTC), slots[3].StartAt)
}

func TestExecute_CreateRejectsInvertedWindow(t *testing.T) {
	uc, _ := setup(t)

	input := gareInput()
	input.EndTime = "09:00"
	_, err := uc.Execute(context.Background(), &savePresence.Request{Input: input})

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validation.ReasonInvalidTimeRange, verr.Reason)
}

// Редактирование с бронированиями требует подтверждения и сообщает их число
func TestExecute_EditRequiresConfirmation(t *testing.T) {
	uc, db := setup(t)
	ctx := context.Background()

	created, err := uc.Execute(ctx, &savePresence.Request{Input: gareInput()})
	require.NoError(t, err)
	id := created.Presence.ID
	slots := testutil.SlotsOf(t, db, id)
	reserve(t, db, slots[0].ID, "a")
	reserve(t, db, slots[1].ID, "b")
	reserve(t, db, slots[1].ID, "c")

	edit := gareInput()
	edit.EndTime = "11:00"

	refused, err := uc.Execute(ctx, &savePresence.Request{ID: ptr.Ptr(id), Input: edit})
	require.NoError(t, err)
	assert.True(t, refused.ConfirmationRequired)
	assert.Equal(t, 3, refused.AffectedReservations)
	assert.Equal(t, slots, testutil.SlotsOf(t, db, id))

	confirmed, err := uc.Execute(ctx, &savePresence.Request{ID: ptr.Ptr(id), Input: edit, Confirm: true})
	require.NoError(t, err)
	assert.False(t, confirmed.ConfirmationRequired)
	assert.Equal(t, 8, confirmed.SlotCount)
	assert.Equal(t, 3, confirmed.AffectedReservations)

	fresh := testutil.SlotsOf(t, db, id)
	require.Len(t, fresh, 8)
	assert.Equal(t, time.Date(2024, 9, 1, 10, 45, 0, 0, time.UTC), fresh[7].StartAt)

	count, err := testutil.NewPresenceService(t, db).CountReservations(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecute_EditWithoutReservationsNeedsNoConfirmation(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	created, err := uc.Execute(ctx, &savePresence.Request{Input: gareInput()})
	require.NoError(t, err)

	edit := gareInput()
	edit.Location = "Gare routière"
	resp, err := uc.Execute(ctx, &savePresence.Request{ID: ptr.Ptr(created.Presence.ID), Input: edit})
	require.NoError(t, err)
	assert.False(t, resp.ConfirmationRequired)
	assert.Equal(t, "Gare routière", resp.Presence.Location)
}

func TestExecute_EditNotFound(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Execute(context.Background(), &savePresence.Request{ID: ptr.Ptr(int64(404)), Input: gareInput(), Confirm: true})
	assert.ErrorIs(t, err, savePresence.ErrPresenceNotFound)
}
