package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a recurring weekly activity (e.g. a dance class every Tuesday).
type Activity struct {
	ID          uuid.UUID
	Day         string // Weekday name; listings sort Monday first, Sunday last.
	Name        string
	Time        string
	Description string
	Contact     string
	Order       int  // Secondary sort key within a day.
	IsVisible   bool // Hidden activities stay manageable but drop off the public page.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WeekdayRank maps a weekday name to its listing position. Unknown day names
// sort after Sunday so malformed legacy rows stay visible at the end.
func WeekdayRank(day string) int {
	switch day {
	case "Monday":
		return 1
	case "Tuesday":
		return 2
	case "Wednesday":
		return 3
	case "Thursday":
		return 4
	case "Friday":
		return 5
	case "Saturday":
		return 6
	case "Sunday":
		return 7
	default:
		return 8
	}
}
