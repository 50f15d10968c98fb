package model

import (
	"fmt"
	"time"
)

// Day represents a civil date with the time of day truncated.
// It is comparable and used as a bucket key.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf truncates t to its calendar date in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the day n days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// String formats the day as 2006-01-02.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText renders the day as 2006-01-02 (also used for JSON map keys).
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a 2006-01-02 day.
func (d *Day) UnmarshalText(b []byte) error {
	t, err := time.Parse("2006-01-02", string(b))
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", string(b), err)
	}
	*d = DayOf(t)
	return nil
}

// Year represents the fixed dataset year.
type Year struct {
	value int
}

// NewYear creates a new year value object.
func NewYear(year int) (*Year, error) {
	if year < 1 || year > 9999 {
		return nil, NewValidationError(fmt.Sprintf("year out of range: %d", year))
	}
	return &Year{value: year}, nil
}

// Int returns the year number.
func (y *Year) Int() int {
	return y.value
}

// Days returns every day of the year in ascending order.
func (y *Year) Days() []Day {
	days := make([]Day, 0, y.Len())
	for d := y.First(); d.Year == y.value; d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Len returns 365 or 366.
func (y *Year) Len() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// First returns January 1st.
func (y *Year) First() Day {
	return Day{Year: y.value, Month: time.January, Day: 1}
}

// Contains reports whether d falls within the year.
func (y *Year) Contains(d Day) bool {
	return d.Year == y.value
}

// IsLeap reports whether the year has 366 days.
func (y *Year) IsLeap() bool {
	v := y.value
	return v%4 == 0 && (v%100 != 0 || v%400 == 0)
}
