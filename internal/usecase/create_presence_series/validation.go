package create_presence_series

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// expandRule раскрывает правило повторения в список дат, начиная с first
// Правило без COUNT/UNTIL допустимо, пока число повторений не превышает limit
func expandRule(rule string, first types.Date, limit int) ([]types.Date, error) {
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	if rule == "" {
		return nil, &validation.Error{Field: "rule", Reason: validation.ReasonRequired}
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, &validation.Error{Field: "rule", Reason: validation.ReasonInvalidRule}
	}
	// Повторения считаются по датам, время суток не используется
	opt.Dtstart = first.Time()

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, &validation.Error{Field: "rule", Reason: validation.ReasonInvalidRule}
	}

	dates := make([]types.Date, 0)
	next := r.Iterator()
	for {
		occ, ok := next()
		if !ok {
			break
		}
		if len(dates) == limit {
			return nil, &validation.Error{Field: "rule", Reason: validation.ReasonTooMany}
		}
		dates = append(dates, types.DateOf(occ.In(time.UTC)))
	}

	if len(dates) == 0 {
		return nil, &validation.Error{Field: "rule", Reason: validation.ReasonInvalidRule}
	}

	return dates, nil
}

// seriesFields строит поля присутствий для каждой даты серии
func seriesFields(base domain.PresenceFields, dates []types.Date) []domain.PresenceFields {
	series := make([]domain.PresenceFields, 0, len(dates))
	for _, d := range dates {
		fields := base
		fields.Date = d
		series = append(series, fields)
	}
	return series
}
