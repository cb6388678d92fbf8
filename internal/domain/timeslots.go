package domain

import (
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// GenerateSlotStarts перечисляет моменты начала слотов start, start+15m, ...
// строго раньше end. Дата и время интерпретируются в loc, результат в UTC.
// Последовательность ленивая и перезапускаемая: каждый range заново
// вычисляет расширение. При end <= start или некорректном времени пуста.
func GenerateSlotStarts(date types.Date, start, end types.TimeString, loc *time.Location) iter.Seq[time.Time] {
	if loc == nil {
		loc = time.UTC
	}

	return func(yield func(time.Time) bool) {
		from, err := start.On(date, loc)
		if err != nil {
			return
		}
		to, err := end.On(date, loc)
		if err != nil {
			return
		}

		for at := from; at.Before(to); at = at.Add(SlotDuration) {
			if !yield(at.UTC()) {
				return
			}
		}
	}
}

// SlotStartsFor возвращает все моменты начала слотов присутствия
func SlotStartsFor(p *Presence, loc *time.Location) []time.Time {
	return slices.Collect(GenerateSlotStarts(p.Date, p.StartTime, p.EndTime, loc))
}
