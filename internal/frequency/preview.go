package frequency

import (
	"fmt"
	"strings"

	"github.com/firmdesk/firmdesk/internal/timeutil"
)

const previewDateFormat = "02/01/2006"

// Preview renders a single sentence describing when, for whom and for what a
// timeline will fire, e.g.
//
//	VAT Filing activity will be created every Monday, Wednesday at 09:30 AM for Acme Ltd
//
// Settings are expected in the 24-hour edit form. The result is "" until the
// activity, at least one client, a kind and a complete configuration are all
// present; callers treat an empty preview as "nothing to show yet".
func Preview(activity string, clients []string, kind Kind, s Settings, start, end *timeutil.Date) string {
	if activity == "" || len(clients) == 0 {
		return ""
	}

	config, ok := s.Config(kind)
	if !ok {
		return ""
	}

	sentence := fmt.Sprintf("%s activity will be created %s for %s",
		activity, clause(config), strings.Join(clients, ", "))

	switch {
	case start != nil && end != nil:
		sentence += fmt.Sprintf(", starting from %s and continuing till %s",
			start.Format(previewDateFormat), end.Format(previewDateFormat))
	case start != nil:
		sentence += fmt.Sprintf(", starting from %s", start.Format(previewDateFormat))
	case end != nil:
		sentence += fmt.Sprintf(", continuing till %s", end.Format(previewDateFormat))
	}

	return sentence
}

func clause(config Config) string {
	switch c := config.(type) {
	case Hourly:
		if c.Interval > 1 {
			return fmt.Sprintf("every %d hours", c.Interval)
		}
		return fmt.Sprintf("every %d hour", c.Interval)
	case Daily:
		return fmt.Sprintf("every day at %s", To12Hour(c.Time))
	case Weekly:
		return fmt.Sprintf("every %s at %s", strings.Join(c.Days, ", "), To12Hour(c.Time))
	case Monthly:
		return fmt.Sprintf("every month on %d%s at %s", c.Day, ordinalSuffix(c.Day), To12Hour(c.Time))
	case Quarterly:
		return fmt.Sprintf("every quarter on %d%s of %s at %s",
			c.Day, ordinalSuffix(c.Day), strings.Join(c.Months, ", "), To12Hour(c.Time))
	case Yearly:
		return fmt.Sprintf("every year on %d%s of %s at %s",
			c.Date, ordinalSuffix(c.Date), strings.Join(c.Months, ", "), To12Hour(c.Time))
	default:
		return ""
	}
}

// ordinalSuffix keeps the backend's naive rule: the suffix follows the last
// digit, with 11, 12 and 13 excepted literally rather than modulo 100.
// Within the day range [1,31] this happens to agree with correct English, so
// it is reproduced rather than fixed.
func ordinalSuffix(n int) string {
	switch n {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
