package query

import (
	"strings"

	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TextScoreField is the projected relevance score of a text search.
const TextScoreField = "score"

// SearchFilter is the ranked text search predicate. It is always scoped to
// available listings.
func SearchFilter(q string) bson.M {
	return bson.M{
		"$text":  bson.M{"$search": strings.TrimSpace(q)},
		"status": models.StatusAvailable,
	}
}

// SearchProjection adds the relevance score to each document.
func SearchProjection() bson.M {
	return bson.M{TextScoreField: bson.M{"$meta": "textScore"}}
}

// SearchSort orders by descending relevance, then id for a stable window.
func SearchSort() bson.D {
	return bson.D{
		{Key: TextScoreField, Value: bson.M{"$meta": "textScore"}},
		{Key: "_id", Value: 1},
	}
}
