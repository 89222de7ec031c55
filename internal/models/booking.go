package models

import "time"

// BookingStatus classifies a booking relative to the calendar day it was
// recorded on.
type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "Upcoming"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking is one recorded companion booking. Entries are append-only:
// once written to the history they are never mutated or removed.
//
// ID and CreatedAt are additive fields; records written without them
// (by the original site) load with zero values.
type Booking struct {
	ID        string        `json:"id,omitempty"`
	Companion string        `json:"companion"`
	Event     string        `json:"event"`
	Date      string        `json:"date"` // ISO calendar date (2006-01-02) or "TBD"
	Location  string        `json:"location"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt,omitzero"`
}
