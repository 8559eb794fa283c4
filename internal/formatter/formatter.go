// package formatter computes display fields for the catalog (abbreviated counts, relative times),
// builds the JSON views served by the API and exports video listings to CSV, Markdown and plain text.
package formatter

import (
	"fmt"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// FormatViews abbreviates a count for display: 2300000 -> "2.3M", 856000 -> "856K", 999 -> "999".
//
// Millions keep one decimal and thousands none, rounded half to even. Values below 1000,
// including zero and negatives, are rendered as plain integers.
func FormatViews(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatTimeAgo describes how long before now t happened, using calendar-naive buckets:
// years are 365 days, months 30 days and weeks 7 days.
//
// Anything under a minute, or in the future, is "Just now".
func FormatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		return "Just now"
	}

	days := int64(diff / day)
	switch {
	case days > 365:
		return ago(days/365, "year")
	case days > 30:
		return ago(days/30, "month")
	case days > 7:
		return ago(days/7, "week")
	case days > 0:
		return ago(days, "day")
	case diff >= time.Hour:
		return ago(int64(diff/time.Hour), "hour")
	case diff >= time.Minute:
		return ago(int64(diff/time.Minute), "minute")
	default:
		return "Just now"
	}
}

func ago(n int64, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
