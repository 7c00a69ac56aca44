// Package engine holds the pure decision logic of a run: paging a year into
// request ranges, picking one authoritative log per day, normalizing
// measurements into scores and walking the calendar to build a series.
// Nothing here performs I/O.
package engine

import (
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"fmt"
	"time"
)

// Planner pages a calendar year into contiguous ranges of a fixed number
// of months. Three months keeps every page under the 100 day span the
// sleep endpoint accepts.
type Planner struct {
	supported      map[int]struct{}
	monthsPerRange int
	loc            *time.Location
}

func NewPlanner(conf *structures.Config, loc *time.Location) (*Planner, error) {
	months := conf.Planner.MonthsPerRange
	if months <= 0 || 12%months != 0 {
		return nil, fmt.Errorf("%w: planner.monthsPerRange must divide 12, got %d", models.ErrConfigMissing, months)
	}
	supported := make(map[int]struct{}, len(conf.Planner.SupportedYears))
	for _, y := range conf.Planner.SupportedYears {
		supported[y] = struct{}{}
	}
	return &Planner{supported: supported, monthsPerRange: months, loc: loc}, nil
}

// PlanRanges returns the ordered, non-overlapping ranges covering
// January 1 through December 31 of year.
func (p *Planner) PlanRanges(year int) ([]models.DateRange, error) {
	if _, ok := p.supported[year]; !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrUnsupportedYear, year)
	}

	ranges := make([]models.DateRange, 0, 12/p.monthsPerRange)
	for month := 1; month <= 12; month += p.monthsPerRange {
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, p.loc)
		// day 0 of the following page is the last day of this one
		to := time.Date(year, time.Month(month+p.monthsPerRange), 0, 0, 0, 0, 0, p.loc)
		ranges = append(ranges, models.DateRange{From: from, To: to})
	}
	return ranges, nil
}

func (p *Planner) Location() *time.Location {
	return p.loc
}
