package slot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-PresenceBooking/internal/testutil"
	"github.com/m04kA/SMC-PresenceBooking/pkg/ptr"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

func TestRepository_CreateForPresence_Idempotent(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)
	ctx := context.Background()

	p := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.June, 1), "08:00", "09:00")

	inserted, err := repo.CreateForPresence(ctx, p.ID, domain.SlotStartsFor(p, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	slots := testutil.SlotsOf(t, db, p.ID)
	require.Len(t, slots, 4)
	for i, s := range slots {
		assert.Equal(t, time.Date(2030, 6, 1, 8, 15*i, 0, 0, time.UTC), s.StartAt)
		assert.Equal(t, "Gare", s.Location)
	}
}

func TestRepository_CreateForPresence_Empty(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)

	inserted, err := repo.CreateForPresence(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestRepository_GetByID(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)
	ctx := context.Background()

	p := testutil.SeedPresence(t, db, "Quai", types.NewDate(2030, time.June, 1), "08:00", "08:30")
	want := testutil.SlotsOf(t, db, p.ID)[1]

	got, err := repo.GetByID(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = repo.GetByID(ctx, want.ID+100)
	assert.ErrorIs(t, err, slot.ErrSlotNotFound)
}

// Список содержит только будущие слоты в порядке дата, место, время
func TestRepository_ListUpcoming_OnlyFutureOrdered(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)
	ctx := context.Background()

	day := types.NewDate(2030, time.June, 1)
	b := testutil.SeedPresence(t, db, "Bravo", day, "08:00", "09:00")
	a := testutil.SeedPresence(t, db, "Alpha", day, "10:00", "10:30")
	next := testutil.SeedPresence(t, db, "Aardvark", day.AddDays(1), "07:00", "07:15")

	now := time.Date(2030, 6, 1, 8, 20, 0, 0, time.UTC)
	got, err := repo.ListUpcoming(ctx, domain.SlotFilter{From: now})
	require.NoError(t, err)

	var order []int64
	for _, s := range got {
		assert.False(t, s.StartAt.Before(now))
		order = append(order, s.PresenceID)
	}
	assert.Equal(t, []int64{a.ID, a.ID, b.ID, b.ID, next.ID}, order)
	assert.Equal(t, time.Date(2030, 6, 1, 8, 30, 0, 0, time.UTC), got[2].StartAt)
}

func TestRepository_ListUpcoming_Filters(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)
	ctx := context.Background()

	day := types.NewDate(2030, time.June, 1)
	gare := testutil.SeedPresence(t, db, "Gare du Nord", day, "08:00", "08:30")
	testutil.SeedPresence(t, db, "Marché", day, "08:00", "08:30")
	testutil.SeedPresence(t, db, "GARE de l'Est", day.AddDays(1), "08:00", "08:15")

	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := repo.ListUpcoming(ctx, domain.SlotFilter{From: from, Location: ptr.Ptr("gare")})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = repo.ListUpcoming(ctx, domain.SlotFilter{From: from, Location: ptr.Ptr("gare"), Date: &day})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, gare.ID, got[0].PresenceID)

	got, err = repo.ListUpcoming(ctx, domain.SlotFilter{From: from, Location: ptr.Ptr("50%")})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_DeleteByPresence(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)

	p := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.June, 1), "08:00", "09:00")

	deleted, err := repo.DeleteByPresence(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.Empty(t, testutil.SlotsOf(t, db, p.ID))
}

func TestRepository_LockByPresence_SQLite(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := slot.NewRepository(db, sqlbuilder.SQLite)

	p := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.June, 1), "08:00", "08:30")

	require.NoError(t, repo.LockByPresence(context.Background(), p.ID))
	assert.Len(t, testutil.SlotsOf(t, db, p.ID), 2)
}
