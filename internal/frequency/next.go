package frequency

import (
	"time"
)

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// NextRun computes the first occurrence of the configuration strictly after
// the given instant, in UTC. It returns false when a time field is malformed
// or a day/month name is unknown. A day of month the month doesn't have rolls
// forward via time.Date normalization (31 February lands in early March).
func NextRun(after time.Time, config Config) (time.Time, bool) {
	after = after.UTC()

	switch c := config.(type) {
	case Hourly:
		if c.Interval <= 0 {
			return time.Time{}, false
		}
		return after.Add(time.Duration(c.Interval) * time.Hour), true

	case Daily:
		hour, minute, ok := parseClock(c.Time)
		if !ok {
			return time.Time{}, false
		}
		next := time.Date(after.Year(), after.Month(), after.Day(), hour, minute, 0, 0, time.UTC)
		if !next.After(after) {
			next = next.AddDate(0, 0, 1)
		}
		return next, true

	case Weekly:
		hour, minute, ok := parseClock(c.Time)
		if !ok || len(c.Days) == 0 {
			return time.Time{}, false
		}
		wanted := make(map[time.Weekday]bool, len(c.Days))
		for _, name := range c.Days {
			day, ok := weekdays[name]
			if !ok {
				return time.Time{}, false
			}
			wanted[day] = true
		}
		for offset := 0; offset <= 7; offset++ {
			next := time.Date(after.Year(), after.Month(), after.Day()+offset, hour, minute, 0, 0, time.UTC)
			if wanted[next.Weekday()] && next.After(after) {
				return next, true
			}
		}
		return time.Time{}, false

	case Monthly:
		hour, minute, ok := parseClock(c.Time)
		if !ok {
			return time.Time{}, false
		}
		next := time.Date(after.Year(), after.Month(), c.Day, hour, minute, 0, 0, time.UTC)
		if !next.After(after) {
			next = time.Date(after.Year(), after.Month()+1, c.Day, hour, minute, 0, 0, time.UTC)
		}
		return next, true

	case Quarterly:
		return nextInMonths(after, c.Months, c.Day, c.Time)

	case Yearly:
		return nextInMonths(after, c.Months, c.Date, c.Time)

	default:
		return time.Time{}, false
	}
}

// nextInMonths finds the earliest occurrence of day/time within the named
// months, searching the current year and the next.
func nextInMonths(after time.Time, monthNames []string, day int, clock string) (time.Time, bool) {
	hour, minute, ok := parseClock(clock)
	if !ok || len(monthNames) == 0 {
		return time.Time{}, false
	}

	var earliest time.Time
	for _, name := range monthNames {
		month, ok := months[name]
		if !ok {
			return time.Time{}, false
		}
		for _, year := range []int{after.Year(), after.Year() + 1} {
			next := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
			if next.After(after) && (earliest.IsZero() || next.Before(earliest)) {
				earliest = next
			}
		}
	}

	if earliest.IsZero() {
		return time.Time{}, false
	}
	return earliest, true
}
