package serviceRepo

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create service indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: -1}, {Key: "order", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, s *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	s.ID = primitive.NewObjectID()
	s.CreatedAt = now
	s.UpdatedAt = now
	s.Normalize()
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return database.WrapError("insert service", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, database.WrapError("find service", err)
	}
	return &s, nil
}

func (r *MongoServiceRepo) Update(ctx context.Context, s *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.UpdatedAt = time.Now().UTC()
	s.Normalize()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return database.WrapError("update service", err)
	}
	if res.MatchedCount == 0 {
		return database.WrapError("update service", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.WrapError("delete service", err)
	}
	if res.DeletedCount == 0 {
		return database.WrapError("delete service", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoServiceRepo) FindPage(ctx context.Context, f query.ServiceFilter, sort bson.D, w query.Window) (query.Page[models.Service], error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return database.FindPage[models.Service](ctx, r.coll, f.BSON(), sort, w, nil)
}

func (r *MongoServiceRepo) increment(ctx context.Context, id primitive.ObjectID, field string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return database.WrapError("increment service "+field, err)
	}
	if res.MatchedCount == 0 {
		return database.WrapError("increment service "+field, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoServiceRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	return r.increment(ctx, id, "metadata.views")
}

func (r *MongoServiceRepo) IncrementInquiries(ctx context.Context, id primitive.ObjectID) error {
	return r.increment(ctx, id, "metadata.inquiries")
}

func (r *MongoServiceRepo) Categories(ctx context.Context) ([]CategoryCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isActive": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$category",
			"count":    bson.M{"$sum": 1},
			"featured": bson.M{"$sum": bson.M{"$cond": bson.A{"$featured", 1, 0}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, database.WrapError("aggregate service categories", err)
	}
	out := []CategoryCount{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, database.WrapError("decode service categories", err)
	}
	return out, nil
}
