package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	presenceRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/presence"
	slotRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// SeedPresence создает присутствие вместе со слотами (в UTC) напрямую через репозитории
func SeedPresence(t *testing.T, db *dbmetrics.DB, location string, date types.Date, start, end types.TimeString) *domain.Presence {
	t.Helper()
	ctx := context.Background()

	p, err := presenceRepo.NewRepository(db, sqlbuilder.SQLite).Create(ctx, &domain.Presence{
		Location:  location,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)

	_, err = slotRepo.NewRepository(db, sqlbuilder.SQLite).CreateForPresence(ctx, p.ID, domain.SlotStartsFor(p, time.UTC))
	require.NoError(t, err)

	return p
}

// SlotsOf возвращает слоты присутствия в порядке начала
func SlotsOf(t *testing.T, db *dbmetrics.DB, presenceID int64) []*domain.Slot {
	t.Helper()

	slots, err := slotRepo.NewRepository(db, sqlbuilder.SQLite).ListByPresence(context.Background(), presenceID)
	require.NoError(t, err)
	return slots
}
