package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityModel mirrors the append-only 'activities' table.
type ActivityModel struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	UserID       uint       `gorm:"not null;index:idx_activities_user_id"`
	User         *UserModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AppID        string     `gorm:"type:varchar(64);not null;default:'ram-bank';index:idx_activities_app_id"`
	ActivityType string     `gorm:"type:varchar(32);not null;index:idx_activities_activity_type;check:chk_activities_activity_type,activity_type IN ('COUNT_INCREMENT','REGISTER','LOGIN','LOGOUT','PROFILE_UPDATE','DAILY_RESET')"`
	Count        int64      `gorm:"not null;default:0"`
	Metadata     datatypes.JSONMap
	Timestamp    time.Time `gorm:"not null;index:idx_activities_timestamp"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
