package delete_presence

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	presencesService "github.com/m04kA/SMC-PresenceBooking/internal/service/presences"
)

// UseCase use case удаления присутствия
// Удаление с бронированиями требует того же подтверждения, что и редактирование
type UseCase struct {
	presenceService PresenceService
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(presenceService PresenceService, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		presenceService: presenceService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute удаляет присутствие вместе со слотами и бронированиями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeletePresence: presence id=%d, confirm=%t", req.ID, req.Confirm)

	// Удаляем каскадно; бронирования пересчитываются в той же транзакции
	affected, err := uc.presenceService.Delete(ctx, req.ID, req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, presencesService.ErrConfirmationRequired):
			uc.logger.Warn("DeletePresence: presence id=%d has %d reservations, confirmation required", req.ID, affected)
			return &Response{ConfirmationRequired: true, AffectedReservations: affected}, nil
		case errors.Is(err, presencesService.ErrPresenceNotFound):
			uc.logger.Warn("DeletePresence: presence id=%d not found", req.ID)
			return nil, ErrPresenceNotFound
		}
		uc.logger.Error("DeletePresence: failed to delete presence id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to delete presence: %v", ErrInternal, err)
	}

	uc.metrics.RecordPresenceEvent(domain.EventPresenceDeleted)
	uc.logger.Info("DeletePresence: presence id=%d deleted with %d reservations", req.ID, affected)

	return &Response{Deleted: true, AffectedReservations: affected}, nil
}
