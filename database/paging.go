package database

import (
	"context"

	"estatehub/database/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindPage runs the windowed find and the total count for the same
// predicate. The two reads are independent, so a write landing between
// them can make the count disagree with the items by that write.
func FindPage[T any](ctx context.Context, coll *mongo.Collection, filter any, sort bson.D, w query.Window, projection any) (query.Page[T], error) {
	opts := options.Find().
		SetSort(sort).
		SetSkip(w.Offset()).
		SetLimit(int64(w.Limit))
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return query.Page[T]{}, WrapError("find "+coll.Name(), err)
	}
	items := make([]T, 0, w.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		return query.Page[T]{}, WrapError("decode "+coll.Name(), err)
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return query.Page[T]{}, WrapError("count "+coll.Name(), err)
	}
	return query.NewPage(items, w, total), nil
}
