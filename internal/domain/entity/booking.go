package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus enumerates the lifecycle states of a hall-hire enquiry.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Valid reports whether the status is one of the enumerated values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	default:
		return false
	}
}

// BookingEnquiry is a hall-hire request submitted by a public visitor.
// It starts in the pending state; only an authenticated status update moves it on.
type BookingEnquiry struct {
	ID        uuid.UUID
	Name      string // Contact name of the enquirer.
	Email     string
	Phone     string
	EventType string // Free-form description of the occasion (wedding, birthday, ...).
	Date      string // Requested date as submitted by the visitor.
	Guests    int    // Expected guest count.
	Message   string // Optional free-text message.
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
