package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationsService "github.com/m04kA/SMC-PresenceBooking/internal/service/reservations"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

// UseCase use case самостоятельного изменения бронирования по токену
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

// Execute изменяет поля бронирования, пока слот не начался
// Окно проверяется до валидации: после начала слота отказ не зависит от данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: request received")

	// 1. Находим бронирование
	res, err := uc.reservationService.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2. Проверяем окно изменения
	if !res.IsMutable(uc.timeProvider.Now()) {
		uc.logger.Warn("UpdateReservation: reservation id=%d slot started at %s", res.ID, res.SlotStartAt)
		return nil, ErrMutationWindowClosed
	}

	// 3. Валидация новых полей по правилам бронирования
	valid, err := validation.ValidateReservation(req.Input)
	if err != nil {
		uc.logger.Warn("UpdateReservation: validation failed for reservation id=%d: %v", res.ID, err)
		return nil, err
	}

	// 4. Обновляем
	updated, err := uc.reservationRepo.UpdateByToken(ctx, req.Token, valid.Fields)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}
	if updated == 0 {
		// удалено между чтением и записью
		uc.logger.Warn("UpdateReservation: reservation id=%d disappeared before update", res.ID)
		return nil, ErrReservationNotFound
	}

	uc.metrics.RecordReservationEvent(domain.EventReservationUpdated)
	uc.logger.Info("UpdateReservation: reservation id=%d updated", res.ID)

	return &Response{
		ID:        res.ID,
		Token:     res.Token,
		SlotID:    res.SlotID,
		StartAt:   res.SlotStartAt,
		Location:  res.Location,
		Date:      res.Date,
		FirstName: valid.Fields.FirstName,
		LastName:  valid.Fields.LastName,
		Phone:     valid.Fields.Phone,
		Quantity:  valid.Fields.Quantity,
		Comment:   valid.Fields.Comment,
		CreatedAt: res.CreatedAt,
	}, nil
}
