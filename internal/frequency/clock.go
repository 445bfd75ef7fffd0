package frequency

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	clock24Pattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	clock12Pattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5][0-9]) (AM|PM)$`)
)

// To12Hour converts a 24-hour "HH:MM" wall-clock time to "HH:MM AM/PM".
// Anything that doesn't match the 24-hour pattern converts to "".
func To12Hour(t string) string {
	m := clock24Pattern.FindStringSubmatch(t)
	if m == nil {
		return ""
	}

	hour, _ := strconv.Atoi(m[1])
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	switch {
	case hour == 0:
		hour = 12
	case hour > 12:
		hour -= 12
	}

	return fmt.Sprintf("%02d:%s %s", hour, m[2], meridiem)
}

// From12Hour converts "HH:MM AM/PM" back to the 24-hour "HH:MM" edit form.
// A bare 24-hour string passes through with its hour zero-padded. Anything
// else degrades to "" so stale or malformed stored values surface as an
// incomplete configuration instead of an error.
func From12Hour(t string) string {
	if m := clock24Pattern.FindStringSubmatch(t); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", hour, m[2])
	}

	m := clock12Pattern.FindStringSubmatch(t)
	if m == nil {
		return ""
	}

	hour, _ := strconv.Atoi(m[1])
	if m[3] == "PM" && hour != 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%s", hour, m[2])
}

// parseClock splits a 24-hour "HH:MM" string into its components.
func parseClock(t string) (hour, minute int, ok bool) {
	m := clock24Pattern.FindStringSubmatch(t)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}
