// Package dates normalizes the date strings attached to transactions.
//
// Only the calendar day matters for sorting and monthly bucketing, so every
// date is reduced to a canonical YYYY-MM-DD form. Plain date strings are
// built from their numeric parts in local time, because parsing YYYY-MM-DD
// with a general ISO parser interprets it as UTC midnight and can shift the
// day depending on the device timezone.
package dates

import (
	"regexp"
	"strconv"
	"time"
)

// CanonicalLayout is the stored, date-only form of a transaction date.
const CanonicalLayout = "2006-01-02"

// MonthKeyLayout keys one calendar-month aggregation bucket.
const MonthKeyLayout = "2006-01"

var dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Fallback layouts for anything that is not a plain date, tried in order.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// Normalize parses a transaction date string into a calendar date.
//
// A plain YYYY-MM-DD string is split into its numeric parts and constructed
// at local midnight. Other formats are delegated to the fallback layouts.
// The second return value is false for empty or unparseable input; callers
// must not use the returned time for comparison or formatting in that case.
func Normalize(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if dateOnly.MatchString(value) {
		year, _ := strconv.Atoi(value[0:4])
		month, _ := strconv.Atoi(value[5:7])
		day, _ := strconv.Atoi(value[8:10])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Canonical formats a date in its canonical stored form.
func Canonical(t time.Time) string {
	return t.Format(CanonicalLayout)
}

// MonthKey returns the YYYY-MM bucket key for a date, using local calendar
// fields.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}
