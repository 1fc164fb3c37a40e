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

// matchDocument stores a match with its position in the source file so reads
// return matches in their original order
type matchDocument struct {
	Seq                int `bson:"seq"`
	models.MatchRecord `bson:",inline"`
}

type MongoMatchRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

func NewMongoMatchRepository(ctx context.Context, db *MongoDB) *MongoMatchRepository {
	collection := db.GetCollection(MatchesCollection)
	logger := logging.WithPrefix("mongo_match_repo")

	ctx, cancel := WithShortTimeout(ctx)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "seq", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "season", Value: 1}, {Key: "week", Value: 1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Errorf("Failed to create indexes on matches collection: %v", err)
	}

	return &MongoMatchRepository{
		collection: collection,
		logger:     logger,
	}
}

// AllMatches returns every stored match in import order
func (r *MongoMatchRepository) AllMatches(ctx context.Context) ([]models.MatchRecord, error) {
	ctx, cancel := WithMediumTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find matches: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []matchDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode matches: %w", err)
	}

	matches := make([]models.MatchRecord, len(docs))
	for i, doc := range docs {
		matches[i] = doc.MatchRecord
	}
	return matches, nil
}

// ReplaceAll swaps the stored matches for the given set
func (r *MongoMatchRepository) ReplaceAll(ctx context.Context, matches []models.MatchRecord) (int, error) {
	ctx, cancel := WithLongTimeout(ctx)
	defer cancel()

	deleted, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear matches collection: %w", err)
	}
	r.logger.Debugf("Cleared %d matches", deleted.DeletedCount)

	if len(matches) == 0 {
		return 0, nil
	}

	operations := make([]mongo.WriteModel, 0, len(matches))
	for i, match := range matches {
		operations = append(operations, mongo.NewInsertOneModel().SetDocument(matchDocument{
			Seq:         i,
			MatchRecord: match,
		}))
	}

	result, err := r.collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	if err != nil {
		r.logger.Errorf("Bulk insert failed: %v", err)
		return 0, fmt.Errorf("failed to insert matches: %w", err)
	}

	r.logger.Infof("Imported %d matches", result.InsertedCount)
	return int(result.InsertedCount), nil
}
