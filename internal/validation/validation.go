package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// ErrValidationFailed базовая ошибка валидации, на неё указывает любой *Error
var ErrValidationFailed = errors.New("validation failed")

// Reason причина отказа валидации
type Reason string

const (
	ReasonRequired         Reason = "required"
	ReasonTooLong          Reason = "too_long"
	ReasonInvalidQuantity  Reason = "invalid_quantity"
	ReasonInvalidEmail     Reason = "invalid_email"
	ReasonInvalidDate      Reason = "invalid_date"
	ReasonInvalidTime      Reason = "invalid_time"
	ReasonInvalidTimeRange Reason = "end_not_after_start"
	ReasonInvalidRule      Reason = "invalid_rule"
	ReasonTooMany          Reason = "too_many_occurrences"
)

// Error нарушенное правило валидации конкретного поля
type Error struct {
	Field  string
	Reason Reason
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrValidationFailed
}

// ReservationInput поля бронирования в том виде, в каком их передал клиент
type ReservationInput struct {
	FirstName string `field:"firstName" validate:"required,max=100"`
	LastName  string `field:"lastName" validate:"required,max=100"`
	Phone     string `field:"phone" validate:"required,max=32"`
	Quantity  string `field:"quantity" validate:"required"`
	Comment   string `field:"comment" validate:"max=500"`
	Email     string `field:"email" validate:"omitempty,email,max=254"`
}

// ValidReservation проверенные поля бронирования
type ValidReservation struct {
	Fields domain.ReservationFields
	Email  *string
}

// PresenceInput поля присутствия в том виде, в каком их передал администратор
type PresenceInput struct {
	Location  string `field:"location" validate:"required,max=200"`
	Date      string `field:"date" validate:"required"`
	StartTime string `field:"startTime" validate:"required"`
	EndTime   string `field:"endTime" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// ValidateReservation проверяет поля бронирования: имя, фамилия, телефон и
// количество обязательны, количество - целое число >= 1
func ValidateReservation(in ReservationInput) (ValidReservation, error) {
	in = ReservationInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Quantity:  strings.TrimSpace(in.Quantity),
		Comment:   strings.TrimSpace(in.Comment),
		Email:     strings.TrimSpace(in.Email),
	}

	if err := validate.Struct(in); err != nil {
		return ValidReservation{}, translate(err)
	}

	quantity, err := strconv.Atoi(in.Quantity)
	if err != nil || quantity < 1 || quantity > domain.MaxQuantity {
		return ValidReservation{}, &Error{Field: "quantity", Reason: ReasonInvalidQuantity}
	}

	out := ValidReservation{
		Fields: domain.ReservationFields{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
			Quantity:  quantity,
		},
	}
	if in.Comment != "" {
		out.Fields.Comment = &in.Comment
	}
	if in.Email != "" {
		out.Email = &in.Email
	}

	return out, nil
}

// ValidatePresence проверяет поля присутствия: все обязательны, дата в
// формате YYYY-MM-DD, время HH:MM, начало строго раньше окончания
func ValidatePresence(in PresenceInput) (domain.PresenceFields, error) {
	in = PresenceInput{
		Location:  strings.TrimSpace(in.Location),
		Date:      strings.TrimSpace(in.Date),
		StartTime: strings.TrimSpace(in.StartTime),
		EndTime:   strings.TrimSpace(in.EndTime),
	}

	if err := validate.Struct(in); err != nil {
		return domain.PresenceFields{}, translate(err)
	}

	date, err := types.ParseDate(in.Date)
	if err != nil {
		return domain.PresenceFields{}, &Error{Field: "date", Reason: ReasonInvalidDate}
	}

	start, err := types.NewTimeStringFromString(in.StartTime)
	if err != nil {
		return domain.PresenceFields{}, &Error{Field: "startTime", Reason: ReasonInvalidTime}
	}

	end, err := types.NewTimeStringFromString(in.EndTime)
	if err != nil {
		return domain.PresenceFields{}, &Error{Field: "endTime", Reason: ReasonInvalidTime}
	}

	if !start.IsBefore(end) {
		return domain.PresenceFields{}, &Error{Field: "endTime", Reason: ReasonInvalidTimeRange}
	}

	return domain.PresenceFields{
		Location:  in.Location,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// translate переводит первую ошибку validator в *Error
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	fe := fieldErrs[0]
	reason := ReasonRequired
	switch fe.Tag() {
	case "max":
		reason = ReasonTooLong
	case "email":
		reason = ReasonInvalidEmail
	}

	return &Error{Field: fe.Field(), Reason: reason}
}
