package frequency

import (
	"testing"

	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) *timeutil.Date {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestPreview_Weekly(t *testing.T) {
	s := Settings{WeeklyDays: []string{"Monday", "Wednesday"}, WeeklyTime: "09:30"}

	got := Preview("VAT Filing", []string{"Acme Ltd"}, KindWeekly, s, nil, nil)
	assert.Equal(t, "VAT Filing activity will be created every Monday, Wednesday at 09:30 AM for Acme Ltd", got)
}

func TestPreview_MonthlyWithDateRange(t *testing.T) {
	s := Settings{MonthlyDay: 2, MonthlyTime: "14:00"}

	got := Preview("Audit", []string{"Beta Inc"}, KindMonthly, s,
		date(t, "2024-01-01"), date(t, "2024-12-31"))
	assert.Contains(t, got, "every month on 2nd at 02:00 PM")
	assert.Contains(t, got, "starting from 01/01/2024 and continuing till 31/12/2024")
}

func TestPreview_DateClauseBranches(t *testing.T) {
	s := Settings{DailyTime: "08:00"}

	startOnly := Preview("Audit", []string{"Beta Inc"}, KindDaily, s, date(t, "2024-01-01"), nil)
	assert.Contains(t, startOnly, "starting from 01/01/2024")
	assert.NotContains(t, startOnly, "continuing till")

	endOnly := Preview("Audit", []string{"Beta Inc"}, KindDaily, s, nil, date(t, "2024-12-31"))
	assert.Contains(t, endOnly, "continuing till 31/12/2024")
	assert.NotContains(t, endOnly, "starting from")

	noDates := Preview("Audit", []string{"Beta Inc"}, KindDaily, s, nil, nil)
	assert.Equal(t, "Audit activity will be created every day at 08:00 AM for Beta Inc", noDates)
}

func TestPreview_Hourly(t *testing.T) {
	one := Preview("Backup", []string{"Acme Ltd"}, KindHourly, Settings{HourlyInterval: 1}, nil, nil)
	assert.Contains(t, one, "every 1 hour for")

	six := Preview("Backup", []string{"Acme Ltd"}, KindHourly, Settings{HourlyInterval: 6}, nil, nil)
	assert.Contains(t, six, "every 6 hours for")
}

func TestPreview_QuarterlyAndYearly(t *testing.T) {
	q := Settings{QuarterlyMonths: []string{"January", "April"}, QuarterlyDay: 15, QuarterlyTime: "09:00"}
	got := Preview("GST Return", []string{"Acme Ltd", "Beta Inc"}, KindQuarterly, q, nil, nil)
	assert.Equal(t, "GST Return activity will be created every quarter on 15th of January, April at 09:00 AM for Acme Ltd, Beta Inc", got)

	y := Settings{YearlyMonth: []string{"March"}, YearlyDate: 31, YearlyTime: "18:30"}
	got = Preview("Annual Filing", []string{"Acme Ltd"}, KindYearly, y, nil, nil)
	assert.Equal(t, "Annual Filing activity will be created every year on 31st of March at 06:30 PM for Acme Ltd", got)
}

func TestPreview_EmptyOnInsufficientInput(t *testing.T) {
	complete := Settings{DailyTime: "08:00"}

	assert.Empty(t, Preview("", []string{"Acme Ltd"}, KindDaily, complete, nil, nil))
	assert.Empty(t, Preview("Audit", nil, KindDaily, complete, nil, nil))
	assert.Empty(t, Preview("Audit", []string{"Acme Ltd"}, "", complete, nil, nil))
	assert.Empty(t, Preview("Audit", []string{"Acme Ltd"}, KindDaily, Settings{}, nil, nil))
}

func TestOrdinalSuffix_NaiveRule(t *testing.T) {
	tests := map[int]string{
		1:  "st",
		2:  "nd",
		3:  "rd",
		4:  "th",
		11: "th",
		12: "th",
		13: "th",
		// The naive rule has no modulo-100 handling, so 21 keeps "st".
		21: "st",
		22: "nd",
		23: "rd",
		31: "st",
	}
	for n, want := range tests {
		assert.Equal(t, want, ordinalSuffix(n), "n=%d", n)
	}
}
