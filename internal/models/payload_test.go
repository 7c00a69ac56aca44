package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sleepBody = `{
  "sleep": [
    {
      "logId": 101,
      "dateOfSleep": "2024-03-02",
      "startTime": "2024-03-01T23:40:00.000",
      "endTime": "2024-03-02T07:10:30.000",
      "isMainSleep": true,
      "timeInBed": 450,
      "minutesAsleep": 410,
      "efficiency": 93
    },
    {
      "logId": 102,
      "dateOfSleep": "2024-03-02",
      "startTime": "2024-03-02T14:00:00.000",
      "endTime": "2024-03-02T14:35:00.000",
      "isMainSleep": false,
      "timeInBed": 35,
      "efficiency": 88
    }
  ]
}`

func TestParseSleepPayload(t *testing.T) {
	records, err := ParseSleepPayload([]byte(sleepBody), time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 2)

	main := records[0]
	assert.Equal(t, KindSleep, main.Kind)
	assert.Equal(t, int64(101), main.LogID)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), main.Day)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 40, 0, 0, time.UTC), main.StartTime)
	assert.Equal(t, time.Date(2024, 3, 2, 7, 10, 30, 0, time.UTC), main.EndTime)
	assert.True(t, main.IsMainSleep)
	assert.Equal(t, 450, main.TimeInBed)
	assert.Equal(t, 93, main.Efficiency)

	assert.False(t, records[1].IsMainSleep)
}

func TestParseSleepPayload_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	records, err := ParseSleepPayload([]byte(sleepBody), tokyo)
	require.NoError(t, err)
	assert.Equal(t, tokyo, records[0].EndTime.Location())
	assert.Equal(t, 7, records[0].EndTime.Hour())
}

func TestParseSleepPayload_EmptyArray(t *testing.T) {
	records, err := ParseSleepPayload([]byte(`{"sleep": []}`), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseSleepPayload_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":      `<html>`,
		"missing array": `{"summary": {}}`,
		"bad day":       `{"sleep":[{"dateOfSleep":"03/02/2024","startTime":"2024-03-01T23:40:00.000","endTime":"2024-03-02T07:10:30.000"}]}`,
		"bad start":     `{"sleep":[{"dateOfSleep":"2024-03-02","startTime":"","endTime":"2024-03-02T07:10:30.000"}]}`,
		"bad end":       `{"sleep":[{"dateOfSleep":"2024-03-02","startTime":"2024-03-01T23:40:00.000","endTime":"soon"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSleepPayload([]byte(body), time.UTC)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedPayload))
		})
	}
}

func TestParseActivityPayload(t *testing.T) {
	body := `{"activities-active-zone-minutes":[
		{"dateTime":"2024-05-01","value":{"activeZoneMinutes":42,"fatBurnActiveZoneMinutes":30,"cardioActiveZoneMinutes":10,"peakActiveZoneMinutes":2}},
		{"dateTime":"2024-05-02","value":{"activeZoneMinutes":7,"fatBurnActiveZoneMinutes":7}}
	]}`
	records, err := ParseActivityPayload([]byte(body), time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, KindActivity, first.Kind)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), first.Day)
	assert.Equal(t, first.Day, first.StartTime)
	assert.Equal(t, 42, first.ActiveZoneMinutes)
	assert.Equal(t, 30, first.FatBurnMinutes)
	assert.Equal(t, 10, first.CardioMinutes)
	assert.Equal(t, 2, first.PeakMinutes)
}

func TestParseActivityPayload_Malformed(t *testing.T) {
	for _, body := range []string{
		`[]`,
		`{}`,
		`{"activities-active-zone-minutes":[{"dateTime":"2024-05-01"}]}`,
		`{"activities-active-zone-minutes":[{"dateTime":"May 1","value":{}}]}`,
	} {
		_, err := ParseActivityPayload([]byte(body), time.UTC)
		assert.ErrorIs(t, err, ErrMalformedPayload, body)
	}
}
