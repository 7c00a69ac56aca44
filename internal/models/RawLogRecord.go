package models

import "time"

// RawLogRecord is one upstream measurement. Sleep records carry session
// bounds and the main-sleep flag; activity records carry the active-zone
// minute breakdown and use the day itself as StartTime.
type RawLogRecord struct {
	Kind      LogKind   `json:"kind"`
	LogID     int64     `json:"log_id,omitempty"`
	Day       time.Time `json:"day"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	IsMainSleep   bool `json:"is_main_sleep,omitempty"`
	TimeInBed     int  `json:"time_in_bed,omitempty"`
	MinutesAsleep int  `json:"minutes_asleep,omitempty"`
	Efficiency    int  `json:"efficiency,omitempty"`

	ActiveZoneMinutes int `json:"active_zone_minutes,omitempty"`
	FatBurnMinutes    int `json:"fat_burn_minutes,omitempty"`
	CardioMinutes     int `json:"cardio_minutes,omitempty"`
	PeakMinutes       int `json:"peak_minutes,omitempty"`
}

// DailyScore is a normalized score for one calendar day.
type DailyScore struct {
	Date  time.Time
	Value float64
}
