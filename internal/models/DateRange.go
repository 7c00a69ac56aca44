package models

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive pair of calendar dates. Both ends are midnight
// in the configured location.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24+0.5) + 1
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.From.Format(DateLayout), r.To.Format(DateLayout))
}

// Span joins an ordered list of ranges into one covering range.
func Span(ranges []DateRange) DateRange {
	if len(ranges) == 0 {
		return DateRange{}
	}
	return DateRange{From: ranges[0].From, To: ranges[len(ranges)-1].To}
}

// DayKey is the exact calendar day of t in its own location.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}
