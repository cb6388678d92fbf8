package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PresenceBooking/internal/integrations/mailer"
	slotsService "github.com/m04kA/SMC-PresenceBooking/internal/service/slots"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

// tokenAttempts число попыток вставки при коллизии токена
const tokenAttempts = 2

// UseCase use case бронирования слота
type UseCase struct {
	slotService     SlotService
	reservationRepo ReservationRepository
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	newToken        func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotService SlotService,
	reservationRepo ReservationRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotService:     slotService,
		reservationRepo: reservationRepo,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		newToken:        uuid.NewString,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithTokenGenerator подменяет генератор токенов
func (uc *UseCase) WithTokenGenerator(gen func() string) *UseCase {
	uc.newToken = gen
	return uc
}

// Execute выполняет бронирование слота
// Порядок: слот -> валидация -> вставка -> уведомление
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: slot=%d", req.SlotID)

	// 1. Слот должен существовать и еще не начаться
	slot, err := uc.slotService.GetUpcoming(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			uc.logger.Warn("CreateReservation: slot id=%d not found or already started", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateReservation: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 2. Валидация полей
	valid, err := validation.ValidateReservation(req.Input)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed for slot=%d: %v", req.SlotID, err)
		return nil, err
	}

	// 3. Вставка со свежим токеном; при коллизии одна повторная попытка
	created, err := uc.insert(ctx, slot, valid.Fields)
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordReservationEvent(domain.EventReservationCreated)
	uc.logger.Info("CreateReservation: reservation id=%d created on slot=%d", created.ID, slot.ID)

	// 4. Уведомление (ошибки только логируются)
	notified := uc.notify(ctx, created, valid.Email)

	return &Response{
		ID:        created.ID,
		Token:     created.Token,
		SlotID:    slot.ID,
		StartAt:   slot.StartAt,
		Location:  slot.Location,
		Date:      slot.Date,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Phone:     created.Phone,
		Quantity:  created.Quantity,
		Comment:   created.Comment,
		CreatedAt: created.CreatedAt,
		Notified:  notified,
	}, nil
}

func (uc *UseCase) insert(ctx context.Context, slot *domain.Slot, fields domain.ReservationFields) (*domain.Reservation, error) {
	for attempt := 1; ; attempt++ {
		res := &domain.Reservation{
			SlotID:      slot.ID,
			FirstName:   fields.FirstName,
			LastName:    fields.LastName,
			Phone:       fields.Phone,
			Quantity:    fields.Quantity,
			Comment:     fields.Comment,
			Token:       uc.newToken(),
			CreatedAt:   uc.timeProvider.Now().UTC(),
			SlotStartAt: slot.StartAt,
			PresenceID:  slot.PresenceID,
			Location:    slot.Location,
			Date:        slot.Date,
		}

		created, err := uc.reservationRepo.Create(ctx, res)
		if err == nil {
			return created, nil
		}

		if errors.Is(err, reservationRepo.ErrDuplicateToken) && attempt < tokenAttempts {
			uc.logger.Warn("CreateReservation: token collision on slot=%d, retrying", slot.ID)
			continue
		}

		uc.logger.Error("CreateReservation: failed to create reservation on slot=%d: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}
}

func (uc *UseCase) notify(ctx context.Context, res *domain.Reservation, email *string) bool {
	if email == nil || uc.notifier == nil || !uc.notifier.Enabled() {
		uc.metrics.RecordNotification(domain.NotificationSkipped)
		return false
	}

	err := uc.notifier.SendConfirmation(ctx, mailer.Confirmation{
		To:        *email,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Phone:     res.Phone,
		Comment:   res.Comment,
		Quantity:  res.Quantity,
		Location:  res.Location,
		StartAt:   res.SlotStartAt,
		Token:     res.Token,
		CreatedAt: res.CreatedAt,
	})
	if err != nil {
		uc.metrics.RecordNotification(domain.NotificationFailed)
		uc.logger.Error("CreateReservation: confirmation for reservation id=%d not sent: %v", res.ID, err)
		return false
	}

	uc.metrics.RecordNotification(domain.NotificationSent)
	return true
}
