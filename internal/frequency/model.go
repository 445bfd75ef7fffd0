// Package frequency implements the recurrence model for timelines: the closed
// set of frequency kinds, the wire-level settings record, completeness
// validation, natural-language previews and next-run computation.
package frequency

type Kind string

const (
	KindHourly    Kind = "Hourly"
	KindDaily     Kind = "Daily"
	KindWeekly    Kind = "Weekly"
	KindMonthly   Kind = "Monthly"
	KindQuarterly Kind = "Quarterly"
	KindYearly    Kind = "Yearly"
)

var Kinds = []Kind{KindHourly, KindDaily, KindWeekly, KindMonthly, KindQuarterly, KindYearly}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Settings is the flat record the wire format carries. Every kind's fields
// are present at once; only the fields of the active kind are meaningful.
// Time fields hold "HH:MM" while a timeline is being edited and
// "HH:MM AM/PM" once stored.
type Settings struct {
	HourlyInterval  int      `json:"hourlyInterval,omitempty"`
	DailyTime       string   `json:"dailyTime,omitempty"`
	WeeklyDays      []string `json:"weeklyDays,omitempty"`
	WeeklyTime      string   `json:"weeklyTime,omitempty"`
	MonthlyDay      int      `json:"monthlyDay,omitempty"`
	MonthlyTime     string   `json:"monthlyTime,omitempty"`
	QuarterlyMonths []string `json:"quarterlyMonths,omitempty"`
	QuarterlyDay    int      `json:"quarterlyDay,omitempty"`
	QuarterlyTime   string   `json:"quarterlyTime,omitempty"`
	YearlyMonth     []string `json:"yearlyMonth,omitempty"`
	YearlyDate      int      `json:"yearlyDate,omitempty"`
	YearlyTime      string   `json:"yearlyTime,omitempty"`
}

// NewSettings returns a fresh configuration with every field at its form
// default: interval and day numbers at 1, times empty, sets empty.
func NewSettings() Settings {
	return Settings{
		HourlyInterval: 1,
		MonthlyDay:     1,
		QuarterlyDay:   1,
		YearlyDate:     1,
	}
}

// To12Hour converts every time field to its "HH:MM AM/PM" wire form. All six
// fields are converted on every save regardless of the active kind; the
// irrelevant ones are dropped later by payload pruning. This mirrors the wire
// contract the backend's existing data was written under.
func (s Settings) To12Hour() Settings {
	s.DailyTime = To12Hour(s.DailyTime)
	s.WeeklyTime = To12Hour(s.WeeklyTime)
	s.MonthlyTime = To12Hour(s.MonthlyTime)
	s.QuarterlyTime = To12Hour(s.QuarterlyTime)
	s.YearlyTime = To12Hour(s.YearlyTime)
	return s
}

// To24Hour converts every time field back to the "HH:MM" edit form. A field
// that matches neither the 12-hour nor the 24-hour pattern degrades to "",
// which the validator then reports as incomplete.
func (s Settings) To24Hour() Settings {
	s.DailyTime = From12Hour(s.DailyTime)
	s.WeeklyTime = From12Hour(s.WeeklyTime)
	s.MonthlyTime = From12Hour(s.MonthlyTime)
	s.QuarterlyTime = From12Hour(s.QuarterlyTime)
	s.YearlyTime = From12Hour(s.YearlyTime)
	return s
}

// Config is the recurrence configuration narrowed to a single kind. Past the
// Settings boundary only the active kind's data exists, so a field left over
// from a previously selected kind can never leak into scheduling.
type Config interface {
	Kind() Kind
}

type Hourly struct {
	// Interval is the number of hours between firings.
	Interval int
}

func (Hourly) Kind() Kind { return KindHourly }

type Daily struct {
	Time string
}

func (Daily) Kind() Kind { return KindDaily }

type Weekly struct {
	// Days are full English weekday names in the order the user picked them.
	Days []string
	Time string
}

func (Weekly) Kind() Kind { return KindWeekly }

type Monthly struct {
	// Day is the day of month in [1,31], taken as-is with no calendar
	// adjustment.
	Day  int
	Time string
}

func (Monthly) Kind() Kind { return KindMonthly }

type Quarterly struct {
	// Months is a subset of {January, April, July, October}.
	Months []string
	Day    int
	Time   string
}

func (Quarterly) Kind() Kind { return KindQuarterly }

type Yearly struct {
	Months []string
	Date   int
	Time   string
}

func (Yearly) Kind() Kind { return KindYearly }

// Config narrows the flat settings record to the active kind. It returns
// false when the kind is unknown or the settings are incomplete for it.
func (s Settings) Config(kind Kind) (Config, bool) {
	if !Complete(kind, s) {
		return nil, false
	}

	switch kind {
	case KindHourly:
		return Hourly{Interval: s.HourlyInterval}, true
	case KindDaily:
		return Daily{Time: s.DailyTime}, true
	case KindWeekly:
		return Weekly{Days: s.WeeklyDays, Time: s.WeeklyTime}, true
	case KindMonthly:
		return Monthly{Day: s.MonthlyDay, Time: s.MonthlyTime}, true
	case KindQuarterly:
		return Quarterly{Months: s.QuarterlyMonths, Day: s.QuarterlyDay, Time: s.QuarterlyTime}, true
	case KindYearly:
		return Yearly{Months: s.YearlyMonth, Date: s.YearlyDate, Time: s.YearlyTime}, true
	default:
		return nil, false
	}
}
