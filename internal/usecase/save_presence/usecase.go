package save_presence

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	presencesService "github.com/m04kA/SMC-PresenceBooking/internal/service/presences"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

// UseCase use case создания и редактирования присутствия
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

// Execute создает присутствие со слотами или изменяет его с перегенерацией слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	fields, err := validation.ValidatePresence(req.Input)
	if err != nil {
		uc.logger.Warn("SavePresence: validation failed: %v", err)
		return nil, err
	}

	if req.ID == nil {
		return uc.create(ctx, fields)
	}
	return uc.update(ctx, *req.ID, fields, req.Confirm)
}

func (uc *UseCase) create(ctx context.Context, fields domain.PresenceFields) (*Response, error) {
	uc.logger.Info("SavePresence: creating presence at %q on %s %s-%s",
		fields.Location, fields.Date, fields.StartTime, fields.EndTime)

	created, slots, err := uc.presenceService.CreateWithSlots(ctx, fields)
	if err != nil {
		uc.logger.Error("SavePresence: failed to create presence: %v", err)
		return nil, fmt.Errorf("%w: failed to create presence: %v", ErrInternal, err)
	}

	uc.metrics.RecordPresenceEvent(domain.EventPresenceCreated)
	return &Response{Presence: created, SlotCount: slots}, nil
}

func (uc *UseCase) update(ctx context.Context, id int64, fields domain.PresenceFields, confirm bool) (*Response, error) {
	uc.logger.Info("SavePresence: updating presence id=%d, confirm=%t", id, confirm)

	// 2. Обновляем и перегенерируем слоты в одной транзакции
	// Бронирования пересчитываются там же: перегенерация удалит их все
	slots, affected, err := uc.presenceService.UpdateWithRegeneration(ctx, id, fields, confirm)
	if errors.Is(err, presencesService.ErrConfirmationRequired) {
		uc.logger.Warn("SavePresence: presence id=%d has %d reservations, confirmation required", id, affected)
		return &Response{ConfirmationRequired: true, AffectedReservations: affected}, nil
	}
	if err != nil {
		return nil, uc.mapServiceError("update presence", id, err)
	}

	uc.metrics.RecordPresenceEvent(domain.EventPresenceRegenerated)
	uc.logger.Info("SavePresence: presence id=%d regenerated with %d slots, %d reservations removed", id, slots, affected)

	return &Response{
		Presence: &domain.Presence{
			ID:        id,
			Location:  fields.Location,
			Date:      fields.Date,
			StartTime: fields.StartTime,
			EndTime:   fields.EndTime,
		},
		SlotCount:            slots,
		AffectedReservations: affected,
	}, nil
}

func (uc *UseCase) mapServiceError(op string, id int64, err error) error {
	if errors.Is(err, presencesService.ErrPresenceNotFound) {
		uc.logger.Warn("SavePresence: presence id=%d not found", id)
		return ErrPresenceNotFound
	}
	uc.logger.Error("SavePresence: failed to %s id=%d: %v", op, id, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
