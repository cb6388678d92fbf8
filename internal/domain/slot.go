package domain

import (
	"time"

	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// Slot 15-минутный интервал для бронирования внутри окна присутствия
type Slot struct {
	ID         int64
	PresenceID int64
	StartAt    time.Time // UTC

	// Денормализованные данные присутствия (заполняются при чтении)
	Location string
	Date     types.Date
}

// EndAt возвращает момент окончания слота
func (s *Slot) EndAt() time.Time {
	return s.StartAt.Add(SlotDuration)
}

// HasStarted возвращает true, если слот уже начался к моменту now
func (s *Slot) HasStarted(now time.Time) bool {
	return !now.Before(s.StartAt)
}

// SlotFilter фильтр списка предстоящих слотов
type SlotFilter struct {
	From     time.Time   // Только слоты, начинающиеся строго позже From (см. HasStarted)
	Date     *types.Date // Конкретная дата присутствия (опционально)
	Location *string     // Подстрока места без учета регистра (опционально)
}
