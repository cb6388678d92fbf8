package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	slotRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Service сервис чтения слотов для публичной части
type Service struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ListUpcoming получает слоты, которые еще не начались
// date и location опциональны; location ищется как подстрока без учета регистра
func (s *Service) ListUpcoming(ctx context.Context, date *types.Date, location *string) ([]*domain.Slot, error) {
	filter := domain.SlotFilter{
		From:     s.timeProvider.Now(),
		Date:     date,
		Location: location,
	}

	list, err := s.slotRepo.ListUpcoming(ctx, filter)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming: %v", ErrInternal, err)
	}

	return list, nil
}

// GetUpcoming получает слот, доступный для бронирования
// Начавшийся слот неотличим от несуществующего
func (s *Service) GetUpcoming(ctx context.Context, id int64) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetUpcoming: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetUpcoming: failed to get slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetUpcoming: %v", ErrInternal, err)
	}

	if slot.HasStarted(s.timeProvider.Now()) {
		s.logger.Warn("GetUpcoming: slot id=%d already started at %s", id, slot.StartAt)
		return nil, ErrSlotNotFound
	}

	return slot, nil
}
