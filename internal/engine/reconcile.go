package engine

import (
	"fitheat/internal/models"
	"github.com/samber/lo"
	"slices"
	"time"
)

// DailyIndex groups one kind of raw records by their day of occurrence and
// answers "which record speaks for this day".
type DailyIndex struct {
	kind  models.LogKind
	byDay map[string][]models.RawLogRecord
}

// NewDailyIndex keeps only records of kind. Records keep their fetch order
// inside a day so that exact start-time ties resolve the same way every run.
func NewDailyIndex(kind models.LogKind, records []models.RawLogRecord) *DailyIndex {
	ofKind := lo.Filter(records, func(r models.RawLogRecord, _ int) bool {
		return r.Kind == kind
	})
	return &DailyIndex{
		kind: kind,
		byDay: lo.GroupBy(ofKind, func(r models.RawLogRecord) string {
			return models.DayKey(r.Day)
		}),
	}
}

func (ix *DailyIndex) Kind() models.LogKind {
	return ix.kind
}

// Reconcile returns the authoritative record for day, or false when the
// day has no data. Days are matched on their calendar date as written by
// the API, never shifted between zones.
func (ix *DailyIndex) Reconcile(day time.Time) (models.RawLogRecord, bool) {
	candidates := ix.byDay[models.DayKey(day)]
	if len(candidates) == 0 {
		return models.RawLogRecord{}, false
	}
	switch ix.kind {
	case models.KindSleep:
		return SelectSleep(candidates), true
	default:
		return SelectActivity(candidates), true
	}
}

// SelectSleep picks the main sleep session. When no session is flagged
// main, the latest-starting session of the day wins.
func SelectSleep(records []models.RawLogRecord) models.RawLogRecord {
	sorted := sortByStart(records)
	if main, ok := lo.Find(sorted, func(r models.RawLogRecord) bool { return r.IsMainSleep }); ok {
		return main
	}
	return sorted[len(sorted)-1]
}

// SelectActivity picks the earliest entry. The feed emits one summary per
// day, so duplicates are unexpected and the first one is kept.
func SelectActivity(records []models.RawLogRecord) models.RawLogRecord {
	return sortByStart(records)[0]
}

func sortByStart(records []models.RawLogRecord) []models.RawLogRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.RawLogRecord) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return sorted
}
