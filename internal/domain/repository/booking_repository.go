package repository

import (
	"context"
	"errors"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is a domain-specific error returned when a booking enquiry is not found.
var ErrBookingNotFound = errors.New("booking enquiry not found")

// BookingRepository defines the standard operations for booking-enquiry persistence.
type BookingRepository interface {
	// Create persists a new enquiry.
	Create(ctx context.Context, booking *entity.BookingEnquiry) error

	// FindByID retrieves a single enquiry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingEnquiry, error)

	// FindAll retrieves every enquiry, newest first.
	FindAll(ctx context.Context) ([]*entity.BookingEnquiry, error)

	// UpdateStatus sets the status of an existing enquiry.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}
