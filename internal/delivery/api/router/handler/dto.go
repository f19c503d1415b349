package handler

import (
	"time"

	"counterhub/internal/domain/entity"
)

// UserResponse is the public view of a user. The PIN hash never leaves the service.
type UserResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Mobile         string     `json:"mobile"`
	AppID          string     `json:"appId"`
	TotalCount     int64      `json:"totalCount"`
	LastActiveDate *time.Time `json:"lastActiveDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ActivityOwner is attached to admin activity listings.
type ActivityOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type ActivityResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	AppID        string         `json:"appId"`
	ActivityType string         `json:"activityType"`
	Count        int64          `json:"count"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	User         *ActivityOwner `json:"user,omitempty"`
}

type DailySummaryResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	AppID      string `json:"appId"`
	Date       string `json:"date"`
	DailyCount int64  `json:"dailyCount"`
	TotalCount int64  `json:"totalCount"`
	Streak     int    `json:"streak"`
}

// Pagination echoes the effective window of a listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Mobile:         u.Mobile,
		AppID:          u.AppID,
		TotalCount:     u.TotalCount,
		LastActiveDate: u.LastActiveDate,
		CreatedAt:      u.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

func toActivityResponses(activities []*entity.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, 0, len(activities))
	for _, a := range activities {
		resp := &ActivityResponse{
			ID:           a.ID,
			UserID:       a.UserID,
			AppID:        a.AppID,
			ActivityType: a.Kind.String(),
			Count:        a.Count,
			Metadata:     a.Metadata,
			Timestamp:    a.Timestamp,
		}
		if a.User != nil {
			resp.User = &ActivityOwner{ID: a.User.ID, Name: a.User.Name, Email: a.User.Email}
		}
		out = append(out, resp)
	}

	return out
}

func toDailySummaryResponse(s *entity.DailySummary) *DailySummaryResponse {
	if s == nil {
		return nil
	}

	return &DailySummaryResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		AppID:      s.AppID,
		Date:       s.Date,
		DailyCount: s.DailyCount,
		TotalCount: s.TotalCount,
		Streak:     s.Streak,
	}
}

func toDailySummaryResponses(summaries []*entity.DailySummary) []*DailySummaryResponse {
	out := make([]*DailySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toDailySummaryResponse(s))
	}

	return out
}

// pageOrDefault fills in the 1-based page number and limit a listing will actually use.
func pageOrDefault(page, limit, defaultLimit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return Pagination{Page: page, Limit: limit}
}
