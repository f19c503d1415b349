package model

import "time"

// DailySummaryModel mirrors the 'daily_summaries' table. (user_id, date) is unique.
type DailySummaryModel struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_daily_summaries_user_date,priority:1;index:idx_daily_summaries_user_id"`
	User       *UserModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AppID      string     `gorm:"type:varchar(64);not null;default:'ram-bank';index:idx_daily_summaries_app_id"`
	Date       string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_summaries_user_date,priority:2;index:idx_daily_summaries_date"`
	DailyCount int64      `gorm:"not null;default:0"`
	TotalCount int64      `gorm:"not null;default:0"`
	Streak     int        `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailySummaryModel) TableName() string {
	return "daily_summaries"
}

// All lists every model in dependency order, parents first.
func All() []any {
	return []any{&UserModel{}, &ActivityModel{}, &DailySummaryModel{}}
}
