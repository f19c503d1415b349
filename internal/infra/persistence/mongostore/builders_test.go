package mongostore

import (
	"testing"
	"time"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUserListFilter(t *testing.T) {
	assert.Empty(t, userListFilter(repository.UserFilter{}))

	filter := userListFilter(repository.UserFilter{AppID: "ram-bank", Search: "  a.b*  "})
	require.Len(t, filter, 2)
	assert.Equal(t, bson.E{Key: "appId", Value: "ram-bank"}, filter[0])

	or, ok := filter[1].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.D{{Key: "name", Value: primitive.Regex{Pattern: `a\.b\*`, Options: "i"}}}, or[0])
}

func TestProfileUpdate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	name := "  Sita  "
	email := ""
	mobile := "9999999999"

	update := profileUpdate(repository.ProfileChanges{Name: &name, Email: &email, Mobile: &mobile}, now)
	require.Len(t, update, 2)
	assert.Equal(t, "$set", update[0].Key)
	assert.Equal(t, bson.D{
		{Key: "updatedAt", Value: now},
		{Key: "name", Value: "Sita"},
		{Key: "mobile", Value: "9999999999"},
	}, update[0].Value)
	assert.Equal(t, bson.E{Key: "$unset", Value: bson.D{{Key: "email", Value: ""}}}, update[1])

	upper := "SITA@Example.com"
	update = profileUpdate(repository.ProfileChanges{Email: &upper}, now)
	require.Len(t, update, 1)
	assert.Contains(t, update[0].Value, bson.E{Key: "email", Value: "sita@example.com"})
}

func TestSummaryUpdate_SetsStreakOnInsertOnly(t *testing.T) {
	now := time.Now().UTC()
	update := summaryUpdate(repository.SummaryDelta{AppID: "ram-bank", Delta: 3, TotalSnapshot: 10, Streak: 0}, now)

	assert.Equal(t, bson.E{Key: "$inc", Value: bson.D{{Key: "dailyCount", Value: int64(3)}}}, update[0])
	assert.Equal(t, bson.E{Key: "$max", Value: bson.D{{Key: "totalCount", Value: int64(10)}}}, update[1])
	assert.Equal(t, bson.E{Key: "$setOnInsert", Value: bson.D{
		{Key: "appId", Value: "ram-bank"},
		{Key: "streak", Value: 1},
		{Key: "createdAt", Value: now},
	}}, update[3])
}

type stubSession struct {
	mongo.Session
}

func TestUpsertAttempts(t *testing.T) {
	assert.Equal(t, 2, upsertAttempts(sessionBinder{}))
	assert.Equal(t, 1, upsertAttempts(sessionBinder{sess: stubSession{}}))
}

func TestActivityPipeline(t *testing.T) {
	page := repository.Page{Limit: 10, Offset: 20}.Normalize()

	own := activityPipeline(bson.D{{Key: "appId", Value: "ram-bank"}}, page, false)
	require.Len(t, own, 4)
	assert.Equal(t, "$skip", own[2][0].Key)
	assert.Equal(t, int64(20), own[2][0].Value)

	admin := activityPipeline(bson.D{}, page, true)
	require.Len(t, admin, 7)
	assert.Equal(t, "$lookup", admin[4][0].Key)
	assert.Equal(t, bson.D{{Key: "user.pin", Value: 0}}, admin[6][0].Value)
}

func TestScopeFilter(t *testing.T) {
	_, ok := scopeFilter(tenant.Scope{UserID: "42", AppID: "ram-bank"}, "_id")
	assert.False(t, ok)

	oid := primitive.NewObjectID()
	filter, ok := scopeFilter(tenant.Scope{UserID: oid.Hex(), AppID: "ram-bank"}, "userId")
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "userId", Value: oid}, {Key: "appId", Value: "ram-bank"}}, filter)
}

func TestCollectionSpecs(t *testing.T) {
	specs := collectionSpecs()
	require.Len(t, specs, 3)

	unique := map[string]bool{}
	for _, spec := range specs {
		for _, index := range spec.indexes {
			if index.Options != nil && index.Options.Unique != nil && *index.Options.Unique {
				unique[spec.name] = true
			}
		}
	}
	assert.Equal(t, map[string]bool{usersCollection: true, dailySummariesCollection: true}, unique)

	assert.Len(t, activityKindEnum(), len(entity.ActivityKinds()))
}

func TestDocumentsToDomain(t *testing.T) {
	userID := primitive.NewObjectID()
	doc := &activityDocument{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		AppID:        "ram-bank",
		ActivityType: entity.ActivityCountIncrement.String(),
		Count:        3,
		User:         &userDocument{ID: userID, Name: "Sita", Email: "sita@example.com"},
	}

	activity := doc.toDomain()
	assert.Equal(t, userID.Hex(), activity.UserID)
	assert.Equal(t, entity.ActivityCountIncrement, activity.Kind)
	require.NotNil(t, activity.User)
	assert.Equal(t, entity.UserSummary{ID: userID.Hex(), Name: "Sita", Email: "sita@example.com"}, *activity.User)

	assert.Nil(t, (&activityDocument{}).toDomain().User)
}
