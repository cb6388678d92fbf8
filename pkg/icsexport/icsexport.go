// Package icsexport формирует iCalendar (RFC 5545) с одним событием
package icsexport

import (
	"errors"
	"time"

	ical "github.com/arran4/golang-ical"
)

// ContentType MIME тип iCalendar
const ContentType = "text/calendar; charset=utf-8"

const productID = "-//SMC//Presence Booking//FR"

// ErrInvalidEvent возвращается при пустом UID или некорректном интервале
var ErrInvalidEvent = errors.New("icsexport: invalid event")

// Event событие календаря
type Event struct {
	UID         string
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
	Created     time.Time
}

// Render сериализует событие в календарь с METHOD:PUBLISH
// Все моменты времени выводятся в UTC
func Render(ev Event) (string, error) {
	if ev.UID == "" || !ev.Start.Before(ev.End) {
		return "", ErrInvalidEvent
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	event := cal.AddEvent(ev.UID)
	stamp := ev.Created
	if stamp.IsZero() {
		stamp = ev.Start
	}
	event.SetCreatedTime(stamp.UTC())
	event.SetDtStampTime(stamp.UTC())
	event.SetStartAt(ev.Start.UTC())
	event.SetEndAt(ev.End.UTC())
	event.SetSummary(ev.Summary)
	if ev.Location != "" {
		event.SetLocation(ev.Location)
	}
	if ev.Description != "" {
		event.SetDescription(ev.Description)
	}

	return cal.Serialize(), nil
}
