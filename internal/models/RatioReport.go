package models

import "fmt"

type RatioReport struct {
	EarlyDays int
	TotalDays int
}

func (r RatioReport) String() string {
	return fmt.Sprintf("%d / %d", r.EarlyDays, r.TotalDays)
}
