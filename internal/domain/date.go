package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in UTC or the "current" marker.
// The zero value is the current marker, so Date is safe to use as a map key.
type Date struct {
	day   int32 // days since 1970-01-01
	valid bool
}

// Current is the marker for "latest available rate".
var Current = Date{}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Date{day: int32(u.Unix() / 86400), valid: true}
}

// ParseDate accepts YYYY-MM-DD, "current" or an empty string.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "current") {
		return Current, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) IsCurrent() bool { return !d.valid }

func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return time.Unix(int64(d.day)*86400, 0).UTC()
}

func (d Date) AddDays(n int) Date {
	if !d.valid {
		return d
	}
	return Date{day: d.day + int32(n), valid: true}
}

// Before compares two calendar days. The current marker is never before or after anything.
func (d Date) Before(o Date) bool { return d.valid && o.valid && d.day < o.day }

func (d Date) After(o Date) bool { return d.valid && o.valid && d.day > o.day }

// Compare orders dates ascending with the current marker after every calendar day.
func (d Date) Compare(o Date) int {
	switch {
	case d.valid == o.valid && d.day == o.day:
		return 0
	case !d.valid:
		return 1
	case !o.valid:
		return -1
	case d.day < o.day:
		return -1
	default:
		return 1
	}
}

func (d Date) String() string {
	if !d.valid {
		return "current"
	}
	return d.Time().Format(dateLayout)
}
