// Package format renders counters, dates and relative times for display.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Count renders view/like/comment counters with a k suffix above 999.
// TODO: every range above 999 rounds to whole thousands, so 1.5k and 15k
// both lose their fraction; add one decimal for the 1000-9999 range.
func Count(n int) string {
	if n >= 1000 {
		return strconv.Itoa(n/1000) + "k"
	}
	return strconv.Itoa(n)
}

// Date renders a timestamp as 2006-01-02, optionally with the time of day.
// The zero time renders as an empty string.
func Date(t time.Time, withTime bool) string {
	if t.IsZero() {
		return ""
	}
	if withTime {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02")
}

// RelativeTime renders how long ago t was, relative to now. Anything older
// than a week falls back to the plain date.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
	return Date(t, false)
}

// Truncate cuts s down to max runes, appending an ellipsis when it cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
