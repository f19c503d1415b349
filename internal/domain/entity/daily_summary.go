package entity

import "time"

// DailySummary is the rollup of one user's increments on one calendar day.
// (UserID, Date) is unique.
type DailySummary struct {
	ID         string
	UserID     string
	AppID      string
	Date       string // Calendar day as YYYY-MM-DD in the configured counter timezone.
	DailyCount int64
	TotalCount int64 // Snapshot of the user's running total at the last update.
	Streak     int   // Consecutive active days ending on Date.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
