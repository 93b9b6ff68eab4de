package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayRank_MondayFirstSundayLast(t *testing.T) {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	previous := 0
	for _, day := range days {
		rank := WeekdayRank(day)
		assert.Greater(t, rank, previous, "day %s", day)
		previous = rank
	}
}

func TestWeekdayRank_UnknownDaySortsLast(t *testing.T) {
	assert.Greater(t, WeekdayRank("Funday"), WeekdayRank("Sunday"))
	assert.Greater(t, WeekdayRank(""), WeekdayRank("Sunday"))
	// Matching is case sensitive; stored day names are canonical.
	assert.Greater(t, WeekdayRank("monday"), WeekdayRank("Sunday"))
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusPending, BookingStatusApproved, BookingStatusRejected} {
		assert.True(t, status.Valid(), "status %s", status)
	}

	assert.False(t, BookingStatus("cancelled").Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, BookingStatus("Pending").Valid())
}
