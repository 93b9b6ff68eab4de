package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a one-off happening shown on the public events page.
type Event struct {
	ID          uuid.UUID
	Title       string
	Date        string // Display date; events are listed in ascending date order.
	Time        string
	Location    string
	Description string
	Category    string
	Image       string // Advisory URL, typically pointing at an uploaded file.
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
