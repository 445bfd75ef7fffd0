package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete_DefaultsPerKind(t *testing.T) {
	fresh := NewSettings()

	// Hourly is the only kind whose form default is already submittable.
	assert.True(t, Complete(KindHourly, fresh))
	assert.False(t, Complete(KindDaily, fresh))
	assert.False(t, Complete(KindWeekly, fresh))
	assert.False(t, Complete(KindMonthly, fresh))
	assert.False(t, Complete(KindQuarterly, fresh))
	assert.False(t, Complete(KindYearly, fresh))
}

func TestComplete_PopulatedPerKind(t *testing.T) {
	tests := []struct {
		kind     Kind
		settings Settings
	}{
		{KindHourly, Settings{HourlyInterval: 4}},
		{KindDaily, Settings{DailyTime: "10:00"}},
		{KindWeekly, Settings{WeeklyDays: []string{"Monday"}, WeeklyTime: "10:00"}},
		{KindMonthly, Settings{MonthlyDay: 15, MonthlyTime: "10:00"}},
		{KindQuarterly, Settings{QuarterlyMonths: []string{"January"}, QuarterlyDay: 15, QuarterlyTime: "10:00"}},
		{KindYearly, Settings{YearlyMonth: []string{"March"}, YearlyDate: 15, YearlyTime: "10:00"}},
	}

	for _, test := range tests {
		assert.True(t, Complete(test.kind, test.settings), "kind %s", test.kind)
	}
}

func TestComplete_IgnoresUnrelatedFields(t *testing.T) {
	s := Settings{
		DailyTime: "10:00",
		// Junk in other kinds' fields must not matter.
		WeeklyTime:   "garbage",
		MonthlyDay:   99,
		YearlyMonth:  []string{"Neverary"},
		QuarterlyDay: -1,
	}
	assert.True(t, Complete(KindDaily, s))
}

func TestComplete_DayRanges(t *testing.T) {
	assert.False(t, Complete(KindMonthly, Settings{MonthlyDay: 0, MonthlyTime: "10:00"}))
	assert.False(t, Complete(KindMonthly, Settings{MonthlyDay: 32, MonthlyTime: "10:00"}))
	// 31 is accepted for any month, even February.
	assert.True(t, Complete(KindMonthly, Settings{MonthlyDay: 31, MonthlyTime: "10:00"}))
}

func TestComplete_NoKind(t *testing.T) {
	assert.False(t, Complete("", Settings{DailyTime: "10:00", HourlyInterval: 1}))
	assert.False(t, Complete("Fortnightly", Settings{DailyTime: "10:00"}))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusNotConfigured, StatusOf("", NewSettings()))
	assert.Equal(t, StatusIncomplete, StatusOf(KindDaily, NewSettings()))
	assert.Equal(t, StatusConfigured, StatusOf(KindDaily, Settings{DailyTime: "10:00"}))
}

func TestSettingsConfig_NarrowsToActiveKind(t *testing.T) {
	s := Settings{
		WeeklyDays: []string{"Monday", "Wednesday"},
		WeeklyTime: "09:30",
		// Stale fields from a previous kind selection.
		DailyTime:  "08:00",
		MonthlyDay: 12,
	}

	config, ok := s.Config(KindWeekly)
	assert.True(t, ok)
	weekly, ok := config.(Weekly)
	assert.True(t, ok)
	assert.Equal(t, []string{"Monday", "Wednesday"}, weekly.Days)
	assert.Equal(t, "09:30", weekly.Time)

	_, ok = s.Config(KindQuarterly)
	assert.False(t, ok)
}
