package frequency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo12Hour(t *testing.T) {
	assert.Equal(t, "12:00 AM", To12Hour("00:00"))
	assert.Equal(t, "12:00 PM", To12Hour("12:00"))
	assert.Equal(t, "01:05 PM", To12Hour("13:05"))
	assert.Equal(t, "11:59 PM", To12Hour("23:59"))
	assert.Equal(t, "09:30 AM", To12Hour("09:30"))
	assert.Equal(t, "09:30 AM", To12Hour("9:30"))
}

func TestTo12Hour_Malformed(t *testing.T) {
	for _, in := range []string{"", "25:00", "12:60", "noon", "12:00 PM"} {
		assert.Empty(t, To12Hour(in), "input %q", in)
	}
}

func TestFrom12Hour(t *testing.T) {
	assert.Equal(t, "00:00", From12Hour("12:00 AM"))
	assert.Equal(t, "12:00", From12Hour("12:00 PM"))
	assert.Equal(t, "13:05", From12Hour("01:05 PM"))
	assert.Equal(t, "23:59", From12Hour("11:59 PM"))
	assert.Equal(t, "09:30", From12Hour("9:30 AM"))
}

func TestFrom12Hour_Passthrough24Hour(t *testing.T) {
	assert.Equal(t, "09:30", From12Hour("09:30"))
	assert.Equal(t, "09:30", From12Hour("9:30"))
	assert.Equal(t, "23:59", From12Hour("23:59"))
}

func TestFrom12Hour_MalformedDegradesToEmpty(t *testing.T) {
	for _, in := range []string{"", "13:00 PM", "12:00PM", "12:00 am", "garbage"} {
		assert.Empty(t, From12Hour(in), "input %q", in)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			in := fmt.Sprintf("%02d:%02d", hour, minute)
			assert.Equal(t, in, From12Hour(To12Hour(in)))
		}
	}
}
