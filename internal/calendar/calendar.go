// Package calendar holds the store-local date helpers shared by the stores
// and the reporting code. All comparisons are by calendar day; time of day is
// dropped.
package calendar

import (
	"fmt"
	"time"

	"github.com/MikeMC777/pos-service/internal/apperr"
)

const (
	// DateLayout and TimeLayout render the human readable fields on receipts
	// and movements, e.g. "October 19, 2026" and "02:05 PM".
	DateLayout = "January 2, 2006"
	TimeLayout = "03:04 PM"
	// QueryLayout is the layout accepted in startDate/endDate query params.
	QueryLayout = "2006-01-02"
)

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// FromMillis converts an epoch-millis timestamp to its calendar day in loc.
func FromMillis(ms int64, loc *time.Location) time.Time {
	return Day(time.UnixMilli(ms), loc)
}

// Clamp builds the date y-m-d, pulling d back to the last day of the month
// when the month is shorter (Feb 30 -> Feb 28/29).
func Clamp(y int, m time.Month, d int, loc *time.Location) time.Time {
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
	if d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Range is an inclusive span of calendar days. A nil bound is open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether day (already truncated) falls within r.
func (r Range) Contains(day time.Time) bool {
	if r.Start != nil && day.Before(*r.Start) {
		return false
	}
	if r.End != nil && day.After(*r.End) {
		return false
	}
	return true
}

// ParseRange parses optional YYYY-MM-DD bounds in loc.
func ParseRange(start, end string, loc *time.Location) (Range, error) {
	var r Range
	if start != "" {
		t, err := time.ParseInLocation(QueryLayout, start, loc)
		if err != nil {
			return Range{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperr.ErrValidation)
		}
		r.Start = &t
	}
	if end != "" {
		t, err := time.ParseInLocation(QueryLayout, end, loc)
		if err != nil {
			return Range{}, fmt.Errorf("%w: endDate must be YYYY-MM-DD", apperr.ErrValidation)
		}
		r.End = &t
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return Range{}, fmt.Errorf("%w: endDate is before startDate", apperr.ErrValidation)
	}
	return r, nil
}
