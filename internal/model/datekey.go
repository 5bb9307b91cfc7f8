package model

import (
	"fmt"
	"time"
)

// DailyKey returns the dateKey for a calendar day.
func DailyKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// LongTermKey returns the synthetic dateKey for a year's long-term plan.
func LongTermKey(t time.Time) string {
	return fmt.Sprintf("long-term-%d", t.Year())
}

// MonthlyKey returns the synthetic dateKey for a month's plan.
func MonthlyKey(t time.Time) string {
	return fmt.Sprintf("monthly-%d-%02d", t.Year(), int(t.Month()))
}
