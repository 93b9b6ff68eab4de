package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingEnquiryModel mirrors the 'booking_enquiries' table.
type BookingEnquiryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50)"`
	EventType string    `gorm:"type:varchar(100);not null"`
	Date      string    `gorm:"type:varchar(50);not null"`
	Guests    int       `gorm:"not null;default:0"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingEnquiryModel) TableName() string {
	return "booking_enquiries"
}
