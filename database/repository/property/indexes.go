package propertyRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the text index used by search and the indexes
// backing the listing filters.
func (r *MongoPropertyRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	textIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "location", Value: "text"},
		},
		Options: options.Index().
			SetName("property_text").
			SetWeights(bson.D{
				{Key: "name", Value: 10},
				{Key: "location", Value: 5},
				{Key: "description", Value: 1},
			}),
	}
	filterIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "type", Value: 1},
			{Key: "status", Value: 1},
			{Key: "price", Value: 1},
		},
	}
	featuredIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "featured", Value: -1}, {Key: "createdAt", Value: -1}},
	}

	indexModels := []mongo.IndexModel{
		textIdx,
		filterIdx,
		featuredIdx,
		{Keys: bson.D{{Key: "subcategory", Value: 1}}},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
