package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

const (
	msgInternalError     = "внутренняя ошибка сервера"
	msgValidationFailed  = "некорректные данные"
	msgConfirmationNeeds = "требуется подтверждение: существующие бронирования будут удалены"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error                string `json:"error"`
	Reason               string `json:"reason,omitempty"`
	Field                string `json:"field,omitempty"`
	AffectedReservations *int   `json:"affectedReservations,omitempty"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON пишет JSON ответ с заданным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет JSON ошибку
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409 с машиночитаемой причиной
func RespondConflict(w http.ResponseWriter, message, reason string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: message, Reason: reason})
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondNoContent 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondValidationError 400 с причиной и полем
// Если err не ошибка валидации - 400 с общим сообщением
func RespondValidationError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		RespondBadRequest(w, msgValidationFailed)
		return
	}
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  msgValidationFailed,
		Reason: string(vErr.Reason),
		Field:  vErr.Field,
	})
}

// RespondConfirmationRequired 409: изменение затронет бронирования и должно быть подтверждено
func RespondConfirmationRequired(w http.ResponseWriter, affected int) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{
		Error:                msgConfirmationNeeds,
		Reason:               "confirmation_required",
		AffectedReservations: &affected,
	})
}
