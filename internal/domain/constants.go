package domain

import "time"

// SlotDuration фиксированная длительность слота
const SlotDuration = 15 * time.Minute

// Ограничения выборок и ввода
const (
	DefaultReservationListLimit = 100
	MaxReservationListLimit     = 500
	MaxSeriesOccurrences        = 100
	MaxLocationLength           = 200
	MaxNameLength               = 100
	MaxPhoneLength              = 32
	MaxCommentLength            = 500
	MaxQuantity                 = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// События для метрик
const (
	EventReservationCreated   = "created"
	EventReservationUpdated   = "updated"
	EventReservationCancelled = "cancelled"
	EventReservationDeleted   = "deleted_by_admin"

	EventPresenceCreated     = "created"
	EventPresenceRegenerated = "regenerated"
	EventPresenceDeleted     = "deleted"
	EventPresencePurged      = "purged"

	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)
