package domain

import (
	"regexp"
	"time"
)

// MonthKey maps a timestamp to its "YYYY-MM" budget period. Every place that
// buckets a timestamp into a month goes through this function, always on UTC
// calendar fields, so the expense-to-budget join can never drift between the
// read and write paths.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CurrentMonthKey returns the bucket for "now".
func CurrentMonthKey() string {
	return MonthKey(time.Now())
}

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonthKey reports whether an externally supplied month key is in
// canonical form.
func ValidMonthKey(key string) bool {
	return monthKeyPattern.MatchString(key)
}
