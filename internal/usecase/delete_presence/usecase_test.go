package delete_presence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-PresenceBooking/internal/testutil"
	deletePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/delete_presence"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/metrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

func TestExecute_DeleteWithReservations(t *testing.T) {
	db := testutil.NewSQLite(t)
	ctx := context.Background()
	var m *metrics.Metrics
	uc := deletePresence.NewUseCase(testutil.NewPresenceService(t, db), m, logger.Nop())

	p := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.June, 1), "09:00", "10:00")
	slots := testutil.SlotsOf(t, db, p.ID)
	resRepo := reservationRepo.NewRepository(db, sqlbuilder.SQLite)
	for i, token := range []string{"x", "y"} {
		_, err := resRepo.Create(ctx, &domain.Reservation{
			SlotID: slots[i].ID, FirstName: "A", LastName: "B", Phone: "1", Quantity: 1,
			Token: token, CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	refused, err := uc.Execute(ctx, &deletePresence.Request{ID: p.ID})
	require.NoError(t, err)
	assert.True(t, refused.ConfirmationRequired)
	assert.Equal(t, 2, refused.AffectedReservations)
	assert.False(t, refused.Deleted)
	assert.Len(t, testutil.SlotsOf(t, db, p.ID), 4)

	done, err := uc.Execute(ctx, &deletePresence.Request{ID: p.ID, Confirm: true})
	require.NoError(t, err)
	assert.True(t, done.Deleted)

	sRepo := slotRepo.NewRepository(db, sqlbuilder.SQLite)
	for _, s := range slots {
		_, err := sRepo.GetByID(ctx, s.ID)
		assert.ErrorIs(t, err, slotRepo.ErrSlotNotFound)
	}
	for _, token := range []string{"x", "y"} {
		_, err := resRepo.GetByToken(ctx, token)
		assert.ErrorIs(t, err, reservationRepo.ErrReservationNotFound)
	}
}

func TestExecute_DeleteWithoutReservations(t *testing.T) {
	db := testutil.NewSQLite(t)
	var m *metrics.Metrics
	uc := deletePresence.NewUseCase(testutil.NewPresenceService(t, db), m, logger.Nop())

	p := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.June, 1), "09:00", "10:00")

	resp, err := uc.Execute(context.Background(), &deletePresence.Request{ID: p.ID})
	require.NoError(t, err)
	assert.True(t, resp.Deleted)

	_, err = uc.Execute(context.Background(), &deletePresence.Request{ID: p.ID})
	assert.ErrorIs(t, err, deletePresence.ErrPresenceNotFound)
}
