package entity

import "time"

// ActivityKind is the closed set of actions recorded in the activity log.
type ActivityKind string

const (
	ActivityCountIncrement ActivityKind = "COUNT_INCREMENT"
	ActivityRegister       ActivityKind = "REGISTER"
	ActivityLogin          ActivityKind = "LOGIN"
	ActivityLogout         ActivityKind = "LOGOUT"
	ActivityProfileUpdate  ActivityKind = "PROFILE_UPDATE"
	ActivityDailyReset     ActivityKind = "DAILY_RESET"
)

// ActivityKinds lists every valid kind in declaration order.
func ActivityKinds() []ActivityKind {
	return []ActivityKind{
		ActivityCountIncrement,
		ActivityRegister,
		ActivityLogin,
		ActivityLogout,
		ActivityProfileUpdate,
		ActivityDailyReset,
	}
}

// IsValid reports whether k belongs to the closed set.
func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityCountIncrement, ActivityRegister, ActivityLogin,
		ActivityLogout, ActivityProfileUpdate, ActivityDailyReset:
		return true
	default:
		return false
	}
}

func (k ActivityKind) String() string {
	return string(k)
}

// Activity is an append-only log record. It is never updated after creation.
type Activity struct {
	ID        string
	UserID    string
	AppID     string // Copied from the owning user so tenant filters need no join.
	Kind      ActivityKind
	Count     int64
	Metadata  map[string]any
	Timestamp time.Time
	User      *UserSummary // Only populated by admin listings.
}
