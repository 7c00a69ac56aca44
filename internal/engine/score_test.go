package engine

import (
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scoreConfig(threshold int) *structures.Config {
	return &structures.Config{
		Score: structures.ScoreConfig{
			EarlyThresholdHour:  threshold,
			ActiveMinutesTarget: 120,
			WakeWindowMinutes:   180,
			MaxScore:            100,
		},
	}
}

func TestSleepScore_Examples(t *testing.T) {
	ideal := at(2024, 3, 1, 9, 0)
	assert.InDelta(t, 50, SleepScore(ideal, at(2024, 3, 1, 9, 0), DefaultWakeWindow, 100), 1e-9)
	assert.InDelta(t, 100, SleepScore(ideal, at(2024, 3, 1, 6, 0), DefaultWakeWindow, 100), 1e-9)
	assert.InDelta(t, 0, SleepScore(ideal, at(2024, 3, 1, 12, 0), DefaultWakeWindow, 100), 1e-9)
	assert.InDelta(t, 75, SleepScore(ideal, at(2024, 3, 1, 7, 30), DefaultWakeWindow, 100), 1e-9)
}

func TestSleepScore_Saturates(t *testing.T) {
	ideal := at(2024, 3, 1, 9, 0)
	assert.Equal(t, 100.0, SleepScore(ideal, at(2024, 3, 1, 3, 0), DefaultWakeWindow, 100))
	assert.Equal(t, 0.0, SleepScore(ideal, at(2024, 3, 1, 16, 0), DefaultWakeWindow, 100))
}

func TestSleepScore_MonotonicallyNonIncreasing(t *testing.T) {
	ideal := at(2024, 3, 1, 9, 0)
	prev := SleepScore(ideal, at(2024, 3, 1, 4, 0), DefaultWakeWindow, 100)
	for m := 1; m <= 10*60; m += 7 {
		actual := at(2024, 3, 1, 4, 0).Add(time.Duration(m) * time.Minute)
		cur := SleepScore(ideal, actual, DefaultWakeWindow, 100)
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, 0.0)
		assert.LessOrEqual(t, cur, 100.0)
		prev = cur
	}
}

func TestActivityScore_Examples(t *testing.T) {
	assert.Equal(t, 50.0, ActivityScore(60, 120, 100))
	assert.Equal(t, 0.0, ActivityScore(0, 120, 100))
	assert.Equal(t, 100.0, ActivityScore(200, 120, 100))
	assert.Equal(t, 100.0, ActivityScore(120, 120, 100))
	assert.Equal(t, 0.0, ActivityScore(-5, 120, 100))
}

func TestScorer_Sleep(t *testing.T) {
	s := NewScorer(scoreConfig(9), time.UTC)
	rec := sleepRec(1, day(2024, 3, 1), at(2024, 2, 29, 23, 0), at(2024, 3, 1, 6, 0), true)
	assert.InDelta(t, 100, s.Score(rec), 1e-9)
	assert.Equal(t, at(2024, 3, 1, 9, 0), s.IdealWake(rec.Day))
}

func TestScorer_Activity(t *testing.T) {
	s := NewScorer(scoreConfig(7), time.UTC)
	assert.Equal(t, 50.0, s.Score(activityRec(day(2024, 3, 1), day(2024, 3, 1), 60)))
}

func TestScorer_IsEarly(t *testing.T) {
	s := NewScorer(scoreConfig(7), time.UTC)
	early := sleepRec(1, day(2024, 3, 1), at(2024, 2, 29, 22, 0), at(2024, 3, 1, 6, 59), true)
	onTheHour := sleepRec(2, day(2024, 3, 1), at(2024, 2, 29, 22, 0), at(2024, 3, 1, 7, 0), true)
	assert.True(t, s.IsEarly(early))
	assert.False(t, s.IsEarly(onTheHour))
}

func TestNewScorer_UsesConfiguredPolicy(t *testing.T) {
	conf := scoreConfig(7)
	conf.Score.ActiveMinutesTarget = 30
	conf.Score.WakeWindowMinutes = 60
	conf.Score.MaxScore = 10
	s := NewScorer(conf, time.UTC)
	assert.Equal(t, time.Hour, s.wakeWindow)
	assert.Equal(t, 30.0, s.activeTarget)
	assert.Equal(t, 10.0, s.maxScore)
	assert.Equal(t, 5.0, s.Score(models.RawLogRecord{Kind: models.KindActivity, ActiveZoneMinutes: 15}))
	assert.Equal(t, 100.0, s.Score(models.RawLogRecord{Kind: models.KindActivity, ActiveZoneMinutes: 500}))
}
