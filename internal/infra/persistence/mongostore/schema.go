package mongostore

import (
	"context"
	"log/slog"

	"counterhub/internal/domain/entity"
	"counterhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionSpec struct {
	name      string
	validator bson.M
	indexes   []mongo.IndexModel
}

func activityKindEnum() bson.A {
	kinds := entity.ActivityKinds()
	enum := make(bson.A, 0, len(kinds))
	for _, kind := range kinds {
		enum = append(enum, kind.String())
	}

	return enum
}

var integerTypes = bson.A{"int", "long"}

func collectionSpecs() []collectionSpec {
	return []collectionSpec{
		{
			name: usersCollection,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": bson.A{"name", "mobile", "appId", "totalCount", "createdAt"},
				"properties": bson.M{
					"name":       bson.M{"bsonType": "string", "minLength": 1},
					"mobile":     bson.M{"bsonType": "string", "minLength": 1},
					"email":      bson.M{"bsonType": "string"},
					"pin":        bson.M{"bsonType": "string"},
					"appId":      bson.M{"bsonType": "string", "pattern": "^[a-z0-9-]{1,64}$"},
					"totalCount": bson.M{"bsonType": integerTypes, "minimum": 0},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "appId", Value: 1}, {Key: "mobile", Value: 1}}, Options: options.Index().SetName("appId_mobile_unique").SetUnique(true)},
				{Keys: bson.D{{Key: "mobile", Value: 1}}, Options: options.Index().SetName("mobile")},
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email")},
				{Keys: bson.D{{Key: "appId", Value: 1}}, Options: options.Index().SetName("appId")},
				{Keys: bson.D{{Key: "lastActiveDate", Value: -1}}, Options: options.Index().SetName("lastActiveDate")},
			},
		},
		{
			name: activitiesCollection,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": bson.A{"userId", "appId", "activityType", "count", "timestamp"},
				"properties": bson.M{
					"userId":       bson.M{"bsonType": "objectId"},
					"appId":        bson.M{"bsonType": "string"},
					"activityType": bson.M{"enum": activityKindEnum()},
					"count":        bson.M{"bsonType": integerTypes},
					"metadata":     bson.M{"bsonType": "object"},
					"timestamp":    bson.M{"bsonType": "date"},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}, Options: options.Index().SetName("userId_timestamp")},
				{Keys: bson.D{{Key: "appId", Value: 1}}, Options: options.Index().SetName("appId")},
				{Keys: bson.D{{Key: "timestamp", Value: -1}}, Options: options.Index().SetName("timestamp")},
				{Keys: bson.D{{Key: "activityType", Value: 1}}, Options: options.Index().SetName("activityType")},
			},
		},
		{
			name: dailySummariesCollection,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": bson.A{"userId", "appId", "date", "dailyCount", "totalCount", "streak"},
				"properties": bson.M{
					"userId":     bson.M{"bsonType": "objectId"},
					"appId":      bson.M{"bsonType": "string"},
					"date":       bson.M{"bsonType": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
					"dailyCount": bson.M{"bsonType": integerTypes},
					"totalCount": bson.M{"bsonType": integerTypes},
					"streak":     bson.M{"bsonType": integerTypes, "minimum": 1},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetName("userId_date_unique").SetUnique(true)},
				{Keys: bson.D{{Key: "appId", Value: 1}}, Options: options.Index().SetName("appId")},
				{Keys: bson.D{{Key: "date", Value: -1}}, Options: options.Index().SetName("date")},
			},
		},
	}
}

// EnsureSchema creates each collection with its validator, refreshes the validator on
// collections that already exist and creates missing indexes. Existing documents are never touched.
func EnsureSchema(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	for _, spec := range collectionSpecs() {
		names, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: spec.name}})
		if err != nil {
			return errors.Wrapf(err, "failed to list collection %s", spec.name)
		}

		if len(names) == 0 {
			opts := options.CreateCollection().SetValidator(spec.validator)
			if err := db.CreateCollection(ctx, spec.name, opts); err != nil {
				return errors.Wrapf(err, "failed to create collection %s", spec.name)
			}
		} else {
			cmd := bson.D{{Key: "collMod", Value: spec.name}, {Key: "validator", Value: spec.validator}}
			if err := db.RunCommand(ctx, cmd).Err(); err != nil {
				return errors.Wrapf(err, "failed to update validator on %s", spec.name)
			}
		}

		if _, err := db.Collection(spec.name).Indexes().CreateMany(ctx, spec.indexes); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", spec.name)
		}
	}

	logger.Info("MongoDB schema ensured")

	return nil
}
