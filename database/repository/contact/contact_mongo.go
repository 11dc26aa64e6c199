package contactRepo

import (
	"context"
	"fmt"
	"time"

	"estatehub/database"
	"estatehub/database/query"
	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

func NewMongoContactRepo(db *mongo.Database) ContactRepository {
	repo := &MongoContactRepo{coll: db.Collection("contacts")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create contact indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "priority", Value: 1}}},
		{Keys: bson.D{{Key: "property", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoContactRepo) Create(ctx context.Context, c *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return database.WrapError("insert contact", err)
	}
	return nil
}

func (r *MongoContactRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Contact
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, database.WrapError("find contact", err)
	}
	return &c, nil
}

func (r *MongoContactRepo) Update(ctx context.Context, c *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return database.WrapError("update contact", err)
	}
	if res.MatchedCount == 0 {
		return database.WrapError("update contact", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoContactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.WrapError("delete contact", err)
	}
	if res.DeletedCount == 0 {
		return database.WrapError("delete contact", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoContactRepo) FindPage(ctx context.Context, f query.ContactFilter, sort bson.D, w query.Window) (query.Page[models.Contact], error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return database.FindPage[models.Contact](ctx, r.coll, f.BSON(), sort, w, nil)
}

func (r *MongoContactRepo) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	countBy := func(field string) bson.A {
		return bson.A{
			bson.M{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
			bson.M{"$sort": bson.D{{Key: "_id", Value: 1}}},
		}
	}
	pipeline := bson.A{
		bson.M{"$facet": bson.M{
			"total":      bson.A{bson.M{"$count": "n"}},
			"byStatus":   countBy("status"),
			"byPriority": countBy("priority"),
		}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, database.WrapError("aggregate contact stats", err)
	}
	var rows []struct {
		Total []struct {
			N int64 `bson:"n"`
		} `bson:"total"`
		ByStatus   []Count `bson:"byStatus"`
		ByPriority []Count `bson:"byPriority"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, database.WrapError("decode contact stats", err)
	}
	stats := &Stats{ByStatus: []Count{}, ByPriority: []Count{}}
	if len(rows) == 0 {
		return stats, nil
	}
	if len(rows[0].Total) > 0 {
		stats.Total = rows[0].Total[0].N
	}
	if rows[0].ByStatus != nil {
		stats.ByStatus = rows[0].ByStatus
	}
	if rows[0].ByPriority != nil {
		stats.ByPriority = rows[0].ByPriority
	}
	return stats, nil
}
