// Package types implements special types for the daily envelope backend.
package types

import (
	"strings"
	"time"
)

// Tracker days are calendar days in a fixed UTC-3 offset. The offset is
// deliberately not DST-aware, a day always flips at 03:00 UTC.
var Location = time.FixedZone("UTC-3", -3*60*60)

// Day is a calendar day in the tracker's fixed UTC-3 offset.
type Day time.Time

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the Day on which a time instant falls in the UTC-3 offset.
func DayOf(t time.Time) Day {
	year, month, day := t.In(Location).Date()
	return NewDay(year, month, day)
}

// Today returns the current Day.
func Today() Day {
	return DayOf(time.Now())
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the YYYY-MM-DD string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The day is expected as a YYYY-MM-DD string, with an RFC3339
// timestamp accepted as fallback for records written by older versions.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02"
	if strings.Contains(value, "T") {
		pattern = time.RFC3339
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = NewDay(t.Year(), t.Month(), t.Day())
	return nil
}

// ParseDay parses a YYYY-MM-DD string and returns the Day it represents.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}

	return NewDay(t.Year(), t.Month(), t.Day()), nil
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds a specified amount of days.
func (d Day) AddDays(days int) Day {
	return Day(time.Time(d).AddDate(0, 0, days))
}

// Before reports whether the day instant d is before e.
func (d Day) Before(e Day) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the day instant d is after e.
func (d Day) After(e Day) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Day) Equal(e Day) bool {
	return time.Time(d).Equal(time.Time(e))
}
