package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssociatedGroup is an affiliated community group presented on the site.
type AssociatedGroup struct {
	ID          uuid.UUID
	Name        string
	Description string
	Schedule    string
	Contact     string
	Website     string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
