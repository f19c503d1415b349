// Package model holds the relational table definitions shared by MySQL, PostgreSQL and SQLite.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. (app_id, mobile) is unique.
type UserModel struct {
	ID             uint       `gorm:"primaryKey;autoIncrement"`
	Name           string     `gorm:"type:varchar(100);not null"`
	Email          *string    `gorm:"type:varchar(255);index:idx_users_email"`
	Mobile         string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_app_mobile,priority:2;index:idx_users_mobile"`
	PinHash        *string    `gorm:"type:varchar(255)"`
	AppID          string     `gorm:"type:varchar(64);not null;default:'ram-bank';uniqueIndex:idx_users_app_mobile,priority:1;index:idx_users_app_id"`
	TotalCount     int64      `gorm:"not null;default:0"`
	LastActiveDate *time.Time `gorm:"index:idx_users_last_active_date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
