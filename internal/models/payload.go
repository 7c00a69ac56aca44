package models

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Fitbit reports local wall-clock instants without an offset.
const fitbitTimeLayout = "2006-01-02T15:04:05.000"

type sleepEntry struct {
	LogID         int64  `json:"logId"`
	DateOfSleep   string `json:"dateOfSleep"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	IsMainSleep   bool   `json:"isMainSleep"`
	TimeInBed     int    `json:"timeInBed"`
	MinutesAsleep int    `json:"minutesAsleep"`
	Efficiency    int    `json:"efficiency"`
}

type sleepPayload struct {
	Sleep *[]sleepEntry `json:"sleep"`
}

type azmValue struct {
	ActiveZoneMinutes        int `json:"activeZoneMinutes"`
	FatBurnActiveZoneMinutes int `json:"fatBurnActiveZoneMinutes"`
	CardioActiveZoneMinutes  int `json:"cardioActiveZoneMinutes"`
	PeakActiveZoneMinutes    int `json:"peakActiveZoneMinutes"`
}

type azmEntry struct {
	DateTime string    `json:"dateTime"`
	Value    *azmValue `json:"value"`
}

type azmPayload struct {
	Entries *[]azmEntry `json:"activities-active-zone-minutes"`
}

// ParseSleepPayload decodes a sleep-by-date-range response body.
func ParseSleepPayload(data []byte, loc *time.Location) ([]RawLogRecord, error) {
	var payload sleepPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: sleep: %w", ErrMalformedPayload, err)
	}
	if payload.Sleep == nil {
		return nil, fmt.Errorf("%w: sleep: missing \"sleep\" array", ErrMalformedPayload)
	}

	records := make([]RawLogRecord, 0, len(*payload.Sleep))
	for i, e := range *payload.Sleep {
		day, err := time.ParseInLocation(DateLayout, e.DateOfSleep, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: sleep[%d].dateOfSleep: %w", ErrMalformedPayload, i, err)
		}
		start, err := time.ParseInLocation(fitbitTimeLayout, e.StartTime, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: sleep[%d].startTime: %w", ErrMalformedPayload, i, err)
		}
		end, err := time.ParseInLocation(fitbitTimeLayout, e.EndTime, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: sleep[%d].endTime: %w", ErrMalformedPayload, i, err)
		}
		records = append(records, RawLogRecord{
			Kind:          KindSleep,
			LogID:         e.LogID,
			Day:           day,
			StartTime:     start,
			EndTime:       end,
			IsMainSleep:   e.IsMainSleep,
			TimeInBed:     e.TimeInBed,
			MinutesAsleep: e.MinutesAsleep,
			Efficiency:    e.Efficiency,
		})
	}
	return records, nil
}

// ParseActivityPayload decodes an active-zone-minutes time series body.
func ParseActivityPayload(data []byte, loc *time.Location) ([]RawLogRecord, error) {
	var payload azmPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: activity: %w", ErrMalformedPayload, err)
	}
	if payload.Entries == nil {
		return nil, fmt.Errorf("%w: activity: missing \"activities-active-zone-minutes\" array", ErrMalformedPayload)
	}

	records := make([]RawLogRecord, 0, len(*payload.Entries))
	for i, e := range *payload.Entries {
		day, err := time.ParseInLocation(DateLayout, e.DateTime, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: activity[%d].dateTime: %w", ErrMalformedPayload, i, err)
		}
		if e.Value == nil {
			return nil, fmt.Errorf("%w: activity[%d]: missing value", ErrMalformedPayload, i)
		}
		records = append(records, RawLogRecord{
			Kind:              KindActivity,
			Day:               day,
			StartTime:         day,
			EndTime:           day,
			ActiveZoneMinutes: e.Value.ActiveZoneMinutes,
			FatBurnMinutes:    e.Value.FatBurnActiveZoneMinutes,
			CardioMinutes:     e.Value.CardioActiveZoneMinutes,
			PeakMinutes:       e.Value.PeakActiveZoneMinutes,
		})
	}
	return records, nil
}
