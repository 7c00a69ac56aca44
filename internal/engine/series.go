package engine

import (
	"fitheat/internal/models"
	"time"
)

// EachDay calls fn for every calendar day of year in ascending order.
func EachDay(year int, loc *time.Location, fn func(day time.Time)) {
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, loc); d.Year() == year; d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// AssembleSeries emits one score per day that has a reconciled log. Days
// without data are left out, never zero-filled, and the walk order is the
// sort order.
func AssembleSeries(ix *DailyIndex, scorer *Scorer, year int, loc *time.Location) []models.DailyScore {
	series := make([]models.DailyScore, 0, 366)
	EachDay(year, loc, func(day time.Time) {
		rec, ok := ix.Reconcile(day)
		if !ok {
			return
		}
		series = append(series, models.DailyScore{Date: day, Value: scorer.Score(rec)})
	})
	return series
}

// EarlyRatio counts the days of year up to and including today against the
// days whose reconciled session ended before the threshold hour.
func EarlyRatio(ix *DailyIndex, scorer *Scorer, year int, today time.Time, loc *time.Location) models.RatioReport {
	t := today.In(loc)
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)

	var report models.RatioReport
	EachDay(year, loc, func(day time.Time) {
		if day.After(cutoff) {
			return
		}
		report.TotalDays++
		if rec, ok := ix.Reconcile(day); ok && scorer.IsEarly(rec) {
			report.EarlyDays++
		}
	})
	return report
}
