package database

import (
	"context"
	"fmt"

	"league-history/logging"
	"league-history/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type managerDocument struct {
	Seq                  int `bson:"seq"`
	models.ManagerRecord `bson:",inline"`
}

type MongoManagerRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

func NewMongoManagerRepository(ctx context.Context, db *MongoDB) *MongoManagerRepository {
	collection := db.GetCollection(ManagersCollection)
	logger := logging.WithPrefix("mongo_manager_repo")

	ctx, cancel := WithShortTimeout(ctx)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Errorf("Failed to create index on managers collection: %v", err)
	}

	return &MongoManagerRepository{
		collection: collection,
		logger:     logger,
	}
}

// AllManagers returns every stored manager in import order
func (r *MongoManagerRepository) AllManagers(ctx context.Context) ([]models.ManagerRecord, error) {
	ctx, cancel := WithMediumTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find managers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []managerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode managers: %w", err)
	}

	managers := make([]models.ManagerRecord, len(docs))
	for i, doc := range docs {
		managers[i] = doc.ManagerRecord
	}
	return managers, nil
}

// ReplaceAll upserts every manager by name and removes managers no longer listed
func (r *MongoManagerRepository) ReplaceAll(ctx context.Context, managers []models.ManagerRecord) (int, error) {
	ctx, cancel := WithLongTimeout(ctx)
	defer cancel()

	names := make([]string, 0, len(managers))
	operations := make([]mongo.WriteModel, 0, len(managers))
	for i, manager := range managers {
		names = append(names, manager.Name)
		operations = append(operations, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"name": manager.Name}).
			SetReplacement(managerDocument{Seq: i, ManagerRecord: manager}).
			SetUpsert(true))
	}

	if len(operations) > 0 {
		result, err := r.collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
		if err != nil {
			r.logger.Errorf("Bulk upsert failed: %v", err)
			return 0, fmt.Errorf("failed to upsert managers: %w", err)
		}
		r.logger.Infof("Processed %d managers: %d upserted, %d modified",
			len(managers), result.UpsertedCount, result.ModifiedCount)
	}

	removed, err := r.collection.DeleteMany(ctx, bson.M{"name": bson.M{"$nin": names}})
	if err != nil {
		return 0, fmt.Errorf("failed to remove stale managers: %w", err)
	}
	if removed.DeletedCount > 0 {
		r.logger.Infof("Removed %d managers no longer listed", removed.DeletedCount)
	}

	return len(managers), nil
}
