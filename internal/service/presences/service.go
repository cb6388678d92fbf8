package presences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	presenceRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/presence"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Service сервис хранения присутствий вместе с их слотами
// Все многошаговые изменения выполняются в одной транзакции
type Service struct {
	presenceRepo PresenceRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса присутствий
// location - часовой пояс, в котором заданы дата и время присутствий
func NewService(
	presenceRepo PresenceRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		presenceRepo: presenceRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		location:     location,
		logger:       logger,
	}
}

// Location возвращает часовой пояс мероприятия
func (s *Service) Location() *time.Location {
	return s.location
}

// CreateWithSlots создает присутствие и все его слоты
// Возвращает созданное присутствие и число слотов
func (s *Service) CreateWithSlots(ctx context.Context, fields domain.PresenceFields) (*domain.Presence, int, error) {
	var (
		created *domain.Presence
		slots   int64
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, slots, err = s.createInTx(txCtx, fields)
		return err
	})
	if err != nil {
		s.logger.Error("CreateWithSlots: failed to create presence at %q on %s: %v", fields.Location, fields.Date, err)
		return nil, 0, fmt.Errorf("%w: CreateWithSlots: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWithSlots: presence id=%d created with %d slots", created.ID, slots)
	return created, int(slots), nil
}

// CreateSeries создает несколько присутствий со слотами в одной транзакции
// При ошибке ни одно присутствие не сохраняется
func (s *Service) CreateSeries(ctx context.Context, series []domain.PresenceFields) ([]*domain.Presence, error) {
	created := make([]*domain.Presence, 0, len(series))

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, fields := range series {
			p, _, err := s.createInTx(txCtx, fields)
			if err != nil {
				return err
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CreateSeries: failed to create %d presences: %v", len(series), err)
		return nil, fmt.Errorf("%w: CreateSeries: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSeries: %d presences created", len(created))
	return created, nil
}

func (s *Service) createInTx(ctx context.Context, fields domain.PresenceFields) (*domain.Presence, int64, error) {
	p, err := s.presenceRepo.Create(ctx, &domain.Presence{
		Location:  fields.Location,
		Date:      fields.Date,
		StartTime: fields.StartTime,
		EndTime:   fields.EndTime,
	})
	if err != nil {
		return nil, 0, err
	}

	slots, err := s.slotRepo.CreateForPresence(ctx, p.ID, domain.SlotStartsFor(p, s.location))
	if err != nil {
		return nil, 0, err
	}

	return p, slots, nil
}

// UpdateWithRegeneration обновляет присутствие и пересоздает все слоты
// Существующие слоты удаляются вместе с бронированиями.
// Бронирования пересчитываются внутри транзакции: без confirm изменение
// с бронированиями откатывается с ErrConfirmationRequired.
// Возвращает число новых слотов и число удаленных бронирований
func (s *Service) UpdateWithRegeneration(ctx context.Context, id int64, fields domain.PresenceFields, confirm bool) (int, int, error) {
	var (
		removed  int64
		inserted int64
		affected int
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Обновляем строку присутствия
		if err := s.presenceRepo.Update(txCtx, id, fields); err != nil {
			return err
		}

		// 2. Пересчитываем бронирования под блокировкой слотов
		var err error
		affected, err = s.guardReservations(txCtx, id, confirm)
		if err != nil {
			return err
		}

		// 3. Удаляем старые слоты (каскадно вместе с бронированиями)
		removed, err = s.slotRepo.DeleteByPresence(txCtx, id)
		if err != nil {
			return err
		}

		// 4. Генерируем слоты по новому окну
		updated := &domain.Presence{
			ID:        id,
			Location:  fields.Location,
			Date:      fields.Date,
			StartTime: fields.StartTime,
			EndTime:   fields.EndTime,
		}
		inserted, err = s.slotRepo.CreateForPresence(txCtx, id, domain.SlotStartsFor(updated, s.location))
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, presenceRepo.ErrPresenceNotFound):
			s.logger.Warn("UpdateWithRegeneration: presence id=%d not found", id)
			return 0, 0, ErrPresenceNotFound
		case errors.Is(err, ErrConfirmationRequired):
			s.logger.Warn("UpdateWithRegeneration: presence id=%d has %d reservations, confirmation required", id, affected)
			return 0, affected, ErrConfirmationRequired
		}
		s.logger.Error("UpdateWithRegeneration: failed to update presence id=%d: %v", id, err)
		return 0, 0, fmt.Errorf("%w: UpdateWithRegeneration: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWithRegeneration: presence id=%d updated, slots %d -> %d, %d reservations removed",
		id, removed, inserted, affected)
	return int(inserted), affected, nil
}

// Delete удаляет присутствие вместе со слотами и бронированиями
// Подтверждение проверяется так же, как в UpdateWithRegeneration.
// Возвращает число удаленных бронирований
func (s *Service) Delete(ctx context.Context, id int64, confirm bool) (int, error) {
	var affected int

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		affected, err = s.guardReservations(txCtx, id, confirm)
		if err != nil {
			return err
		}
		return s.presenceRepo.Delete(txCtx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, presenceRepo.ErrPresenceNotFound):
			s.logger.Warn("Delete: presence id=%d not found", id)
			return 0, ErrPresenceNotFound
		case errors.Is(err, ErrConfirmationRequired):
			s.logger.Warn("Delete: presence id=%d has %d reservations, confirmation required", id, affected)
			return affected, ErrConfirmationRequired
		}
		s.logger.Error("Delete: failed to delete presence id=%d: %v", id, err)
		return 0, fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: presence id=%d deleted with %d reservations", id, affected)
	return affected, nil
}

// guardReservations блокирует слоты присутствия до конца транзакции и считает их бронирования
// Параллельное бронирование либо уже учтено в счетчике, либо ждет коммита
func (s *Service) guardReservations(ctx context.Context, id int64, confirm bool) (int, error) {
	if err := s.slotRepo.LockByPresence(ctx, id); err != nil {
		return 0, err
	}

	count, err := s.presenceRepo.CountReservations(ctx, id)
	if err != nil {
		return 0, err
	}

	if count > 0 && !confirm {
		return count, ErrConfirmationRequired
	}
	return count, nil
}

// GetByID получает присутствие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Presence, error) {
	p, err := s.presenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, presenceRepo.ErrPresenceNotFound) {
			return nil, ErrPresenceNotFound
		}
		s.logger.Error("GetByID: failed to get presence id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}
	return p, nil
}

// CountReservations подсчитывает бронирования на слотах присутствия
func (s *Service) CountReservations(ctx context.Context, id int64) (int, error) {
	count, err := s.presenceRepo.CountReservations(ctx, id)
	if err != nil {
		s.logger.Error("CountReservations: failed for presence id=%d: %v", id, err)
		return 0, fmt.Errorf("%w: CountReservations: %v", ErrInternal, err)
	}
	return count, nil
}

// ListWithCounts получает все присутствия с количеством слотов и бронирований
func (s *Service) ListWithCounts(ctx context.Context) ([]*domain.PresenceWithCounts, error) {
	list, err := s.presenceRepo.ListWithCounts(ctx)
	if err != nil {
		s.logger.Error("ListWithCounts: %v", err)
		return nil, fmt.Errorf("%w: ListWithCounts: %v", ErrInternal, err)
	}
	return list, nil
}

// DeleteBefore удаляет присутствия с датой раньше date
func (s *Service) DeleteBefore(ctx context.Context, date types.Date) (int64, error) {
	deleted, err := s.presenceRepo.DeleteBefore(ctx, date)
	if err != nil {
		s.logger.Error("DeleteBefore: failed to delete presences before %s: %v", date, err)
		return 0, fmt.Errorf("%w: DeleteBefore: %v", ErrInternal, err)
	}
	return deleted, nil
}
