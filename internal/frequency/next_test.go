package frequency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-12 is a Wednesday.
var wednesdayNoon = time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC)

func TestNextRun_Hourly(t *testing.T) {
	next, ok := NextRun(wednesdayNoon, Hourly{Interval: 6})
	require.True(t, ok)
	assert.Equal(t, wednesdayNoon.Add(6*time.Hour), next)

	_, ok = NextRun(wednesdayNoon, Hourly{Interval: 0})
	assert.False(t, ok)
}

func TestNextRun_Daily(t *testing.T) {
	// Later today.
	next, ok := NextRun(wednesdayNoon, Daily{Time: "18:30"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 12, 18, 30, 0, 0, time.UTC), next)

	// Already past today, rolls to tomorrow.
	next, ok = NextRun(wednesdayNoon, Daily{Time: "08:00"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 13, 8, 0, 0, 0, time.UTC), next)
}

func TestNextRun_Weekly(t *testing.T) {
	next, ok := NextRun(wednesdayNoon, Weekly{Days: []string{"Monday", "Friday"}, Time: "09:00"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 14, 9, 0, 0, 0, time.UTC), next)

	// Same weekday at an earlier clock time lands next week.
	next, ok = NextRun(wednesdayNoon, Weekly{Days: []string{"Wednesday"}, Time: "09:00"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 19, 9, 0, 0, 0, time.UTC), next)

	_, ok = NextRun(wednesdayNoon, Weekly{Days: []string{"Funday"}, Time: "09:00"})
	assert.False(t, ok)
}

func TestNextRun_Monthly(t *testing.T) {
	next, ok := NextRun(wednesdayNoon, Monthly{Day: 20, Time: "10:00"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC), next)

	next, ok = NextRun(wednesdayNoon, Monthly{Day: 5, Time: "10:00"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.July, 5, 10, 0, 0, 0, time.UTC), next)
}

func TestNextRun_MonthlyOverflowNormalizesForward(t *testing.T) {
	after := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	next, ok := NextRun(after, Monthly{Day: 31, Time: "10:00"})
	require.True(t, ok)
	// February has no 31st; the run lands in early March.
	assert.Equal(t, time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC), next)
}

func TestNextRun_Quarterly(t *testing.T) {
	next, ok := NextRun(wednesdayNoon, Quarterly{Months: []string{"January", "April", "July", "October"}, Day: 15, Time: "09:00"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.July, 15, 9, 0, 0, 0, time.UTC), next)
}

func TestNextRun_Yearly(t *testing.T) {
	// The named month already passed this year.
	next, ok := NextRun(wednesdayNoon, Yearly{Months: []string{"March"}, Date: 31, Time: "18:30"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 31, 18, 30, 0, 0, time.UTC), next)
}
