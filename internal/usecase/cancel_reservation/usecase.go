package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationsService "github.com/m04kA/SMC-PresenceBooking/internal/service/reservations"
)

// UseCase use case самостоятельной отмены бронирования по токену
type UseCase struct {
	reservationService ReservationService
	reservationRepo    ReservationRepository
	metrics            Metrics
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationService ReservationService,
	reservationRepo ReservationRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationService: reservationService,
		reservationRepo:    reservationRepo,
		metrics:            metrics,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute удаляет бронирование, пока слот не начался
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelReservation: request received")

	// 1. Находим бронирование
	res, err := uc.reservationService.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to get reservation: %v", err)
		return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2. Проверяем окно изменения
	if !res.IsMutable(uc.timeProvider.Now()) {
		uc.logger.Warn("CancelReservation: reservation id=%d slot started at %s", res.ID, res.SlotStartAt)
		return ErrMutationWindowClosed
	}

	// 3. Удаляем; 0 строк - бронирование уже удалено, результат тот же
	if _, err := uc.reservationRepo.DeleteByToken(ctx, req.Token); err != nil {
		uc.logger.Error("CancelReservation: failed to delete reservation id=%d: %v", res.ID, err)
		return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}

	uc.metrics.RecordReservationEvent(domain.EventReservationCancelled)
	uc.logger.Info("CancelReservation: reservation id=%d cancelled", res.ID)
	return nil
}
