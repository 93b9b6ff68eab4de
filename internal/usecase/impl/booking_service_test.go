package impl

import (
	"context"
	"testing"
	"time"

	"hallcms/config"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	bookingRepo *mockBookingRepository
	notifier    *mockBookingNotifier
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	t.Helper()

	bookingRepo := &mockBookingRepository{}
	notifier := &mockBookingNotifier{}

	service := NewBookingService(BookingServiceParams{
		BookingRepo: bookingRepo,
		Notifier:    notifier,
		Logger:      newDiscardLogger(),
	})

	return bookingServiceFixtures{
		service:     service,
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}
}

func submitInput() usecase.SubmitBookingInput {
	return usecase.SubmitBookingInput{
		Name:      "Jo Bloggs",
		Email:     "jo@example.org",
		Phone:     "01234 567890",
		EventType: "birthday",
		Date:      "2026-10-03",
		Guests:    40,
		Message:   "Afternoon party",
	}
}

func TestBookingService_Submit_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	notified := make(chan struct{})

	fx.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.BookingEnquiry")).
		Run(func(args mock.Arguments) {
			booking := args.Get(1).(*entity.BookingEnquiry)
			booking.ID = uuid.New()
		}).
		Return(nil)
	fx.notifier.On("NotifyBookingCreated", mock.Anything, mock.AnythingOfType("*entity.BookingEnquiry")).
		Run(func(mock.Arguments) { close(notified) }).
		Return(nil)

	booking, err := fx.service.Submit(ctx, submitInput())

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "jo@example.org", booking.Email)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notification was never sent")
	}
}

// A broken notifier must not surface to the caller: the enquiry is already
// stored by the time the notification fires.
func TestBookingService_Submit_NotifierFailureIsSwallowed(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	notified := make(chan struct{})

	fx.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.BookingEnquiry")).Return(nil)
	fx.notifier.On("NotifyBookingCreated", mock.Anything, mock.AnythingOfType("*entity.BookingEnquiry")).
		Run(func(mock.Arguments) { close(notified) }).
		Return(errors.New("smtp connection refused"))

	booking, err := fx.service.Submit(ctx, submitInput())

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notification was never attempted")
	}
}

// The notification deadline comes from the SMTP send timeout in config.
func TestBookingService_Submit_NotifyDeadlineFromConfig(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	notifier := &mockBookingNotifier{}

	sendTimeout := 5 * time.Minute
	service := NewBookingService(BookingServiceParams{
		BookingRepo: bookingRepo,
		Notifier:    notifier,
		Config:      &config.Config{SMTP: &config.SMTPConfig{SendTimeout: sendTimeout}},
		Logger:      newDiscardLogger(),
	})

	notified := make(chan time.Time, 1)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.BookingEnquiry")).Return(nil)
	notifier.On("NotifyBookingCreated", mock.Anything, mock.AnythingOfType("*entity.BookingEnquiry")).
		Run(func(args mock.Arguments) {
			deadline, _ := args.Get(0).(context.Context).Deadline()
			notified <- deadline
		}).
		Return(nil)

	_, err := service.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	select {
	case deadline := <-notified:
		require.False(t, deadline.IsZero(), "notification context must carry a deadline")
		remaining := time.Until(deadline)
		assert.Greater(t, remaining, sendTimeout-time.Minute)
		assert.LessOrEqual(t, remaining, sendTimeout)
	case <-time.After(time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestBookingService_Submit_StoreFailure(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	fx.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.BookingEnquiry")).
		Return(errors.New("connection reset"))

	booking, err := fx.service.Submit(ctx, submitInput())

	assert.Nil(t, booking)
	assert.Error(t, err)
	fx.notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
}

func TestBookingService_List_NewestFirstPassthrough(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	stored := []*entity.BookingEnquiry{
		{ID: uuid.New(), Name: "Later"},
		{ID: uuid.New(), Name: "Earlier"},
	}
	fx.bookingRepo.On("FindAll", ctx).Return(stored, nil)

	bookings, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, bookings)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.bookingRepo.On("FindByID", ctx, id).Return(nil, repository.ErrBookingNotFound)

	booking, err := fx.service.Get(ctx, id)

	assert.Nil(t, booking)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingNotFound))
}

func TestBookingService_UpdateStatus_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	id := uuid.New()
	updated := &entity.BookingEnquiry{ID: id, Status: entity.BookingStatusApproved}

	fx.bookingRepo.On("UpdateStatus", ctx, id, entity.BookingStatusApproved).Return(nil)
	fx.bookingRepo.On("FindByID", ctx, id).Return(updated, nil)

	booking, err := fx.service.UpdateStatus(ctx, id, "approved")

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusApproved, booking.Status)
}

// An unknown status is rejected before any storage access.
func TestBookingService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestBookingService(t)

	booking, err := fx.service.UpdateStatus(context.Background(), uuid.New(), "cancelled")

	assert.Nil(t, booking)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBookingStatus))
	fx.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.bookingRepo.On("UpdateStatus", ctx, id, entity.BookingStatusRejected).
		Return(repository.ErrBookingNotFound)

	booking, err := fx.service.UpdateStatus(ctx, id, "rejected")

	assert.Nil(t, booking)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingNotFound))
}
