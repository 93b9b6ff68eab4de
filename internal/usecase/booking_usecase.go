package usecase

import (
	"context"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitBookingInput defines the data a public visitor submits for a hall-hire enquiry.
type SubmitBookingInput struct {
	Name      string
	Email     string
	Phone     string
	EventType string
	Date      string
	Guests    int
	Message   string
}

// BookingUsecase defines the interface for booking-enquiry business operations.
type BookingUsecase interface {
	// Submit persists a new enquiry in the pending state and triggers a
	// best-effort notification. Notification failure never fails the submission.
	Submit(ctx context.Context, input SubmitBookingInput) (*entity.BookingEnquiry, error)

	// List returns every enquiry, newest first.
	List(ctx context.Context) ([]*entity.BookingEnquiry, error)

	// Get returns a single enquiry.
	Get(ctx context.Context, id uuid.UUID) (*entity.BookingEnquiry, error)

	// UpdateStatus moves an enquiry to pending, approved or rejected and
	// returns the updated enquiry.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.BookingEnquiry, error)
}
