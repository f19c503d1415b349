package sqlstore

import (
	"strconv"
	"time"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/repository"
	"counterhub/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseID accepts only positive decimal ids. Anything else cannot name a row.
func parseID(id string) (uint, bool) {
	v, err := strconv.ParseUint(id, 10, strconv.IntSize)
	if err != nil || v == 0 {
		return 0, false
	}

	return uint(v), true
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// utc normalises times before they are stored or compared; SQLite compares them as text.
func utc(t time.Time) time.Time {
	return t.UTC()
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:             formatID(m.ID),
		Name:           m.Name,
		Email:          derefString(m.Email),
		Mobile:         m.Mobile,
		PinHash:        derefString(m.PinHash),
		AppID:          m.AppID,
		TotalCount:     m.TotalCount,
		LastActiveDate: m.LastActiveDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	m := &model.UserModel{
		Name:       u.Name,
		Email:      optionalString(u.Email),
		Mobile:     u.Mobile,
		PinHash:    optionalString(u.PinHash),
		AppID:      u.AppID,
		TotalCount: u.TotalCount,
	}
	if u.LastActiveDate != nil {
		t := utc(*u.LastActiveDate)
		m.LastActiveDate = &t
	}

	return m
}

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	a := &entity.Activity{
		ID:        formatID(m.ID),
		UserID:    formatID(m.UserID),
		AppID:     m.AppID,
		Kind:      entity.ActivityKind(m.ActivityType),
		Count:     m.Count,
		Metadata:  map[string]any(m.Metadata),
		Timestamp: m.Timestamp,
	}
	if m.User != nil {
		a.User = &entity.UserSummary{
			ID:    formatID(m.User.ID),
			Name:  m.User.Name,
			Email: derefString(m.User.Email),
		}
	}

	return a
}

func fromActivityDomain(a *entity.Activity, userID uint) *model.ActivityModel {
	var metadata datatypes.JSONMap
	if len(a.Metadata) > 0 {
		metadata = datatypes.JSONMap(a.Metadata)
	}

	return &model.ActivityModel{
		UserID:       userID,
		AppID:        a.AppID,
		ActivityType: a.Kind.String(),
		Count:        a.Count,
		Metadata:     metadata,
		Timestamp:    utc(a.Timestamp),
	}
}

func toSummaryDomain(m *model.DailySummaryModel) *entity.DailySummary {
	return &entity.DailySummary{
		ID:         formatID(m.ID),
		UserID:     formatID(m.UserID),
		AppID:      m.AppID,
		Date:       m.Date,
		DailyCount: m.DailyCount,
		TotalCount: m.TotalCount,
		Streak:     m.Streak,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func orderClause(column string, order repository.SortOrder) string {
	if order == repository.SortAsc {
		return column + " ASC"
	}

	return column + " DESC"
}
