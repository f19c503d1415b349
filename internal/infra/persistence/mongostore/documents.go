package mongostore

import (
	"strings"
	"time"

	"counterhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email,omitempty"`
	Mobile         string             `bson:"mobile"`
	PinHash        string             `bson:"pin,omitempty"`
	AppID          string             `bson:"appId"`
	TotalCount     int64              `bson:"totalCount"`
	LastActiveDate *time.Time         `bson:"lastActiveDate,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

type activityDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId"`
	AppID        string             `bson:"appId"`
	ActivityType string             `bson:"activityType"`
	Count        int64              `bson:"count"`
	Metadata     bson.M             `bson:"metadata,omitempty"`
	Timestamp    time.Time          `bson:"timestamp"`
	User         *userDocument      `bson:"user,omitempty"` // Filled by $lookup in admin listings.
}

type dailySummaryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"userId"`
	AppID      string             `bson:"appId"`
	Date       string             `bson:"date"`
	DailyCount int64              `bson:"dailyCount"`
	TotalCount int64              `bson:"totalCount"`
	Streak     int                `bson:"streak"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

// normalizeName and normalizeEmail mirror the field rules a document schema cannot express.
func normalizeName(s string) string {
	return strings.TrimSpace(s)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return oid, true
}

func (d *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Email:          d.Email,
		Mobile:         d.Mobile,
		PinHash:        d.PinHash,
		AppID:          d.AppID,
		TotalCount:     d.TotalCount,
		LastActiveDate: d.LastActiveDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (d *activityDocument) toDomain() *entity.Activity {
	a := &entity.Activity{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		AppID:     d.AppID,
		Kind:      entity.ActivityKind(d.ActivityType),
		Count:     d.Count,
		Metadata:  map[string]any(d.Metadata),
		Timestamp: d.Timestamp,
	}
	if d.User != nil {
		a.User = &entity.UserSummary{ID: d.User.ID.Hex(), Name: d.User.Name, Email: d.User.Email}
	}

	return a
}

func (d *dailySummaryDocument) toDomain() *entity.DailySummary {
	return &entity.DailySummary{
		ID:         d.ID.Hex(),
		UserID:     d.UserID.Hex(),
		AppID:      d.AppID,
		Date:       d.Date,
		DailyCount: d.DailyCount,
		TotalCount: d.TotalCount,
		Streak:     d.Streak,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
