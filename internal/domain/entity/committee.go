package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommitteeMember is an entry in the organization's committee roster.
type CommitteeMember struct {
	ID        uuid.UUID
	Name      string
	Position  string
	Bio       string
	Image     string
	Order     int // Listing position on the committee page.
	CreatedAt time.Time
	UpdatedAt time.Time
}
