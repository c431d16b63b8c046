package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/calendar"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// weekDays is the length of the trailing week window, today included.
const weekDays = 7

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	case "today":
		return PeriodDay, nil
	}
	return "", fmt.Errorf("%w: period must be one of day, week, month, year", apperr.ErrValidation)
}

// Span is an inclusive range of calendar days.
type Span struct {
	Start time.Time
	End   time.Time
}

func (s Span) Contains(day time.Time) bool { return !day.Before(s.Start) && !day.After(s.End) }

func (s Span) Range() calendar.Range {
	start, end := s.Start, s.End
	return calendar.Range{Start: &start, End: &end}
}

// Window returns the span a period covers as of now: the calendar day, the
// trailing seven days, month to date or year to date.
func Window(p Period, now time.Time, loc *time.Location) Span {
	today := calendar.Day(now, loc)
	switch p {
	case PeriodWeek:
		return Span{Start: today.AddDate(0, 0, -(weekDays - 1)), End: today}
	case PeriodMonth:
		return Span{Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc), End: today}
	case PeriodYear:
		return Span{Start: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc), End: today}
	default:
		return Span{Start: today, End: today}
	}
}

// PriorWindow is the equivalent span right before Window(p, now): yesterday,
// the seven days before the trailing week, the previous month up to the same
// day, the previous year up to the same date. Day numbers past the end of a
// shorter month are clamped.
func PriorWindow(p Period, now time.Time, loc *time.Location) Span {
	today := calendar.Day(now, loc)
	switch p {
	case PeriodWeek:
		end := today.AddDate(0, 0, -weekDays)
		return Span{Start: end.AddDate(0, 0, -(weekDays - 1)), End: end}
	case PeriodMonth:
		start := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, loc)
		return Span{Start: start, End: calendar.Clamp(start.Year(), start.Month(), today.Day(), loc)}
	case PeriodYear:
		y := today.Year() - 1
		return Span{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
			End:   calendar.Clamp(y, today.Month(), today.Day(), loc),
		}
	default:
		y := today.AddDate(0, 0, -1)
		return Span{Start: y, End: y}
	}
}
