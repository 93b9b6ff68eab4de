package service

import (
	"context"

	"hallcms/internal/domain/entity"
)

// BookingNotifier delivers an alert to the organization when a new booking
// enquiry arrives. Delivery is best effort: submission succeeds even when the
// notifier fails, so implementations must be safe to call and forget.
type BookingNotifier interface {
	// NotifyBookingCreated sends a notification describing the new enquiry.
	NotifyBookingCreated(ctx context.Context, booking *entity.BookingEnquiry) error
}
