// Package model holds the GORM-specific persistence structs. These mirror the
// database tables and are mapped to pure domain entities at the repository
// boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserModel mirrors the 'admin_users' table. PostgreSQL generates UUIDs
// via gen_random_uuid(). Username and email carry unique indexes; the
// repository translates violations into domain errors.
type AdminUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255)"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}
