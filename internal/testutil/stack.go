package testutil

import (
	"testing"
	"time"

	presenceRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/presence"
	slotRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-PresenceBooking/internal/service/presences"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
	"github.com/m04kA/SMC-PresenceBooking/pkg/txmanager"
)

// NewPresenceService собирает сервис присутствий поверх SQLite в UTC
func NewPresenceService(t *testing.T, db *dbmetrics.DB) *presences.Service {
	t.Helper()
	return presences.NewService(
		presenceRepo.NewRepository(db, sqlbuilder.SQLite),
		slotRepo.NewRepository(db, sqlbuilder.SQLite),
		txmanager.NewTransactionManager(db),
		time.UTC,
		logger.Nop(),
	)
}
