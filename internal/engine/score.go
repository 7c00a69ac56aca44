package engine

import (
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"time"
)

const (
	DefaultWakeWindow = 180 * time.Minute
	DefaultMaxScore   = 100.0
)

// SleepScore maps how much earlier than ideal the user woke up onto
// [0, maxScore]. The difference is clamped to ±window, so waking at the
// ideal time scores half, waking a full window early saturates at
// maxScore and a full window late at zero.
func SleepScore(idealWake, actualWake time.Time, window time.Duration, maxScore float64) float64 {
	w := window.Minutes()
	diff := clamp(idealWake.Sub(actualWake).Minutes(), -w, w)
	ratio := diff / w
	return (ratio + 1) / 2 * maxScore
}

// ActivityScore is the share of target reached, capped at maxScore.
func ActivityScore(actualMinutes, target, maxScore float64) float64 {
	return clamp(actualMinutes, 0, target) / target * maxScore
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Scorer applies the configured score policy to a reconciled record.
type Scorer struct {
	thresholdHour int
	wakeWindow    time.Duration
	activeTarget  float64
	maxScore      float64
	loc           *time.Location
}

// NewScorer takes the score policy as validated by the config provider;
// the target, window and maximum are positive there.
func NewScorer(conf *structures.Config, loc *time.Location) *Scorer {
	return &Scorer{
		thresholdHour: conf.Score.EarlyThresholdHour,
		wakeWindow:    time.Duration(conf.Score.WakeWindowMinutes * float64(time.Minute)),
		activeTarget:  conf.Score.ActiveMinutesTarget,
		maxScore:      conf.Score.MaxScore,
		loc:           loc,
	}
}

// IdealWake is the threshold hour on the record's day.
func (s *Scorer) IdealWake(day time.Time) time.Time {
	d := day.In(s.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), s.thresholdHour, 0, 0, 0, s.loc)
}

func (s *Scorer) Score(rec models.RawLogRecord) float64 {
	if rec.Kind == models.KindSleep {
		return SleepScore(s.IdealWake(rec.Day), rec.EndTime, s.wakeWindow, s.maxScore)
	}
	return ActivityScore(float64(rec.ActiveZoneMinutes), s.activeTarget, s.maxScore)
}

// IsEarly reports whether the session ended before the threshold hour.
func (s *Scorer) IsEarly(rec models.RawLogRecord) bool {
	return rec.EndTime.In(s.loc).Hour() < s.thresholdHour
}
