package frequency

// Status is the advisory configuration state shown while a timeline form is
// being filled in. Only Complete gates submission.
type Status string

const (
	StatusNotConfigured Status = "Not configured"
	StatusIncomplete    Status = "Incomplete"
	StatusConfigured    Status = "Configured"
)

// Complete reports whether the settings carry every field the given kind
// requires. Fields belonging to other kinds are ignored.
func Complete(kind Kind, s Settings) bool {
	switch kind {
	case KindHourly:
		return s.HourlyInterval > 0
	case KindDaily:
		return s.DailyTime != ""
	case KindWeekly:
		return len(s.WeeklyDays) > 0 && s.WeeklyTime != ""
	case KindMonthly:
		return dayInMonthRange(s.MonthlyDay) && s.MonthlyTime != ""
	case KindQuarterly:
		return len(s.QuarterlyMonths) > 0 && dayInMonthRange(s.QuarterlyDay) && s.QuarterlyTime != ""
	case KindYearly:
		return len(s.YearlyMonth) > 0 && dayInMonthRange(s.YearlyDate) && s.YearlyTime != ""
	default:
		return false
	}
}

// StatusOf derives the three-valued form status from Complete.
func StatusOf(kind Kind, s Settings) Status {
	if kind == "" {
		return StatusNotConfigured
	}
	if Complete(kind, s) {
		return StatusConfigured
	}
	return StatusIncomplete
}

// dayInMonthRange accepts any day in [1,31]; whether the day exists in a
// given month is deliberately not checked.
func dayInMonthRange(day int) bool {
	return day >= 1 && day <= 31
}
