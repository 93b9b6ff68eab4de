package impl

import (
	"context"
	"log/slog"
	"time"

	"hallcms/config"
	deliverycontext "hallcms/internal/delivery/context"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/domain/service"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultNotifyTimeout bounds the detached notification send so a stuck SMTP
// connection cannot leak goroutines.
const defaultNotifyTimeout = 30 * time.Second

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo   repository.BookingRepository
	notifier      service.BookingNotifier
	notifyTimeout time.Duration
	logger        *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	Notifier    service.BookingNotifier
	Config      *config.Config `optional:"true"`
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	notifyTimeout := defaultNotifyTimeout
	if params.Config != nil && params.Config.SMTP != nil && params.Config.SMTP.SendTimeout > 0 {
		notifyTimeout = params.Config.SMTP.SendTimeout
	}

	return &bookingService{
		bookingRepo:   params.BookingRepo,
		notifier:      params.Notifier,
		notifyTimeout: notifyTimeout,
		logger:        params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit persists a new enquiry in the pending state, then fires the
// notification from a detached goroutine. The enquiry is already stored when
// the notification goes out, so a notifier failure is logged and discarded.
func (srv *bookingService) Submit(ctx context.Context, input usecase.SubmitBookingInput) (*entity.BookingEnquiry, error) {
	booking := &entity.BookingEnquiry{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EventType: input.EventType,
		Date:      input.Date,
		Guests:    input.Guests,
		Message:   input.Message,
		Status:    entity.BookingStatusPending,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to store booking enquiry")
	}

	srv.log(ctx).Info("Booking enquiry received",
		slog.Any("bookingID", booking.ID),
		slog.String("eventType", booking.EventType),
	)

	// Detach from the request context; the response must not wait on SMTP.
	notifyLogger := srv.log(ctx)
	go func(b entity.BookingEnquiry) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), srv.notifyTimeout)
		defer cancel()

		if err := srv.notifier.NotifyBookingCreated(notifyCtx, &b); err != nil {
			notifyLogger.Error("Booking notification failed",
				slog.Any("bookingID", b.ID),
				slog.Any("error", err),
			)
		}
	}(*booking)

	return booking, nil
}

// List returns every enquiry, newest first.
func (srv *bookingService) List(ctx context.Context) ([]*entity.BookingEnquiry, error) {
	bookings, err := srv.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list booking enquiries")
	}

	return bookings, nil
}

// Get returns a single enquiry.
func (srv *bookingService) Get(ctx context.Context, id uuid.UUID) (*entity.BookingEnquiry, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to load booking enquiry")
	}

	return booking, nil
}

// UpdateStatus moves an enquiry between pending, approved and rejected.
// The status is validated before any storage access, so an invalid value
// never mutates state.
func (srv *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.BookingEnquiry, error) {
	newStatus := entity.BookingStatus(status)
	if !newStatus.Valid() {
		return nil, domainerrors.ErrInvalidBookingStatus
	}

	if err := srv.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to update booking status")
	}

	srv.log(ctx).Info("Booking status updated",
		slog.Any("bookingID", id),
		slog.String("status", status),
	)

	return srv.Get(ctx, id)
}
