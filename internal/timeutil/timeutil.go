package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsDate reports whether value is a well-formed YYYY-MM-DD string.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// SameDay reports whether two YYYY-MM-DD strings name the same calendar day.
// Anything after the date part (a time-of-day suffix) is ignored.
func SameDay(a, b string) bool {
	da, okA := datePart(a)
	db, okB := datePart(b)
	return okA && okB && da == db
}

// Today returns the current calendar day in loc, or UTC when loc is nil.
func Today(now func() time.Time, loc *time.Location) string {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now().In(loc))
}

func datePart(value string) (string, bool) {
	if len(value) < len(DateLayout) {
		return "", false
	}
	day := value[:len(DateLayout)]
	if !IsDate(day) {
		return "", false
	}
	return day, true
}
