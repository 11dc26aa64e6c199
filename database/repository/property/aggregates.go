package propertyRepo

import (
	"context"
	"time"

	"estatehub/database"

	"go.mongodb.org/mongo-driver/bson"
)

func groupBy(field string) bson.A {
	return bson.A{
		bson.M{"$group": bson.M{
			"_id":        "$" + field,
			"count":      bson.M{"$sum": 1},
			"avgPrice":   bson.M{"$avg": "$price"},
			"totalViews": bson.M{"$sum": "$views"},
		}},
		bson.M{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}
}

// Stats runs a single $facet aggregation over the whole collection.
func (r *MongoPropertyRepo) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$facet": bson.M{
			"overall": bson.A{
				bson.M{"$group": bson.M{
					"_id":        nil,
					"total":      bson.M{"$sum": 1},
					"featured":   bson.M{"$sum": bson.M{"$cond": bson.A{"$featured", 1, 0}}},
					"avgPrice":   bson.M{"$avg": "$price"},
					"minPrice":   bson.M{"$min": "$price"},
					"maxPrice":   bson.M{"$max": "$price"},
					"totalViews": bson.M{"$sum": "$views"},
				}},
			},
			"byCategory": groupBy("category"),
			"byType":     groupBy("type"),
			"byStatus":   groupBy("status"),
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, database.WrapError("aggregate property stats", err)
	}
	var rows []struct {
		Overall []struct {
			Total      int64   `bson:"total"`
			Featured   int64   `bson:"featured"`
			AvgPrice   float64 `bson:"avgPrice"`
			MinPrice   float64 `bson:"minPrice"`
			MaxPrice   float64 `bson:"maxPrice"`
			TotalViews int64   `bson:"totalViews"`
		} `bson:"overall"`
		ByCategory []Bucket `bson:"byCategory"`
		ByType     []Bucket `bson:"byType"`
		ByStatus   []Bucket `bson:"byStatus"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, database.WrapError("decode property stats", err)
	}

	stats := &Stats{ByCategory: []Bucket{}, ByType: []Bucket{}, ByStatus: []Bucket{}}
	if len(rows) == 0 {
		return stats, nil
	}
	row := rows[0]
	if len(row.Overall) > 0 {
		o := row.Overall[0]
		stats.Total = o.Total
		stats.Featured = o.Featured
		stats.AvgPrice = o.AvgPrice
		stats.MinPrice = o.MinPrice
		stats.MaxPrice = o.MaxPrice
		stats.TotalViews = o.TotalViews
	}
	if row.ByCategory != nil {
		stats.ByCategory = row.ByCategory
	}
	if row.ByType != nil {
		stats.ByType = row.ByType
	}
	if row.ByStatus != nil {
		stats.ByStatus = row.ByStatus
	}
	return stats, nil
}
