package postgres

import (
	"context"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new enquiry.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.BookingEnquiry) error {
	m := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking enquiry")
	}

	booking.ID = m.ID
	booking.CreatedAt = m.CreatedAt
	booking.UpdatedAt = m.UpdatedAt

	return nil
}

// FindByID retrieves a single enquiry by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingEnquiry, error) {
	var m model.BookingEnquiryModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&m), nil
}

// FindAll retrieves every enquiry, newest first.
func (repo *bookingRepository) FindAll(ctx context.Context) ([]*entity.BookingEnquiry, error) {
	var ms []model.BookingEnquiryModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.BookingEnquiry, 0, len(ms))
	for i := range ms {
		bookings = append(bookings, toBookingDomain(&ms[i]))
	}

	return bookings, nil
}

// UpdateStatus sets the status of an existing enquiry.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingEnquiryModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingEnquiryModel to a domain BookingEnquiry entity.
func toBookingDomain(data *model.BookingEnquiryModel) *entity.BookingEnquiry {
	if data == nil {
		return nil
	}

	return &entity.BookingEnquiry{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		EventType: data.EventType,
		Date:      data.Date,
		Guests:    data.Guests,
		Message:   data.Message,
		Status:    entity.BookingStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBookingDomain converts a domain BookingEnquiry entity to a GORM BookingEnquiryModel.
func fromBookingDomain(data *entity.BookingEnquiry) *model.BookingEnquiryModel {
	if data == nil {
		return nil
	}

	return &model.BookingEnquiryModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		EventType: data.EventType,
		Date:      data.Date,
		Guests:    data.Guests,
		Message:   data.Message,
		Status:    string(data.Status),
	}
}
