package entity

// TenantStats aggregates one application, or every application when AppID is empty.
type TenantStats struct {
	AppID           string
	TotalUsers      int64
	ActiveToday     int64 // Distinct users with a LOGIN or REGISTER since the start of today.
	TodayTotalCount int64 // Sum of today's daily counts.
}

// AppUsage is one row of the application listing.
type AppUsage struct {
	AppID     string
	Name      string
	UserCount int64
}
