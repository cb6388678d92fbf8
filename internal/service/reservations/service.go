package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/reservation"
)

// Service сервис чтения бронирований и административного удаления
type Service struct {
	reservationRepo ReservationRepository
	metrics         Metrics
	maxLimit        int
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
// maxLimit - верхняя граница размера страницы админского списка
func NewService(reservationRepo ReservationRepository, metrics Metrics, maxLimit int, logger Logger) *Service {
	if maxLimit <= 0 {
		maxLimit = domain.DefaultReservationListLimit
	}
	return &Service{
		reservationRepo: reservationRepo,
		metrics:         metrics,
		maxLimit:        maxLimit,
		logger:          logger,
	}
}

// GetByToken получает бронирование по токену
func (s *Service) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	if token == "" {
		return nil, ErrReservationNotFound
	}

	res, err := s.reservationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByToken: reservation not found")
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken: %v", ErrInternal, err)
	}

	return res, nil
}

// List получает бронирования для администратора
// Limit ограничивается сверху; 0 означает размер страницы по умолчанию
func (s *Service) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if filter.Limit <= 0 || filter.Limit > s.maxLimit {
		filter.Limit = s.maxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations (limit=%d, offset=%d)", len(list), filter.Limit, filter.Offset)
	return list, nil
}

// DeleteByID удаляет бронирование по ID без проверки окна изменения
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.reservationRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("DeleteByID: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("DeleteByID: failed to delete reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteByID: %v", ErrInternal, err)
	}

	s.metrics.RecordReservationEvent(domain.EventReservationDeleted)
	s.logger.Info("DeleteByID: reservation id=%d deleted by admin", id)
	return nil
}
