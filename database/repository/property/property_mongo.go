package propertyRepo

import (
	"context"
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

const collectionName = "properties"

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates the repository and ensures its indexes.
func NewMongoPropertyRepo(db *mongo.Database) PropertyRepository {
	repo := &MongoPropertyRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create property indexes", zap.Error(err))
	}
	return repo
}

// newContext bounds a store call by timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoPropertyRepo) Create(ctx context.Context, p *models.Property) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return database.WrapError("insert property", err)
	}
	return nil
}

func (r *MongoPropertyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var p models.Property
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, database.WrapError("find property", err)
	}
	return &p, nil
}

func (r *MongoPropertyRepo) Update(ctx context.Context, p *models.Property) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	p.UpdatedAt = time.Now().UTC()
	p.Score = 0
	p.Normalize()
	fields, err := editableFields(p)
	if err != nil {
		return database.WrapError("update property", err)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": p.ID}, bson.M{"$set": fields}, opts).Decode(p)
	if err != nil {
		return database.WrapError("update property", err)
	}
	return nil
}

// managedFields are written only by their own operations ($inc, $push,
// Create). An edit based on an older read must not overwrite them.
var managedFields = []string{"_id", "views", "images", "score", "createdBy", "createdAt"}

// editableFields is the $set document for an update of p.
func editableFields(p *models.Property) (bson.M, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for _, key := range managedFields {
		delete(fields, key)
	}
	return fields, nil
}

func (r *MongoPropertyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.WrapError("delete property", err)
	}
	if res.DeletedCount == 0 {
		return database.WrapError("delete property", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoPropertyRepo) FindPage(ctx context.Context, f query.ListingFilter, sort bson.D, w query.Window) (query.Page[models.Property], error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()
	return database.FindPage[models.Property](ctx, r.coll, f.BSON(), sort, w, nil)
}

func (r *MongoPropertyRepo) Search(ctx context.Context, q string, w query.Window) (query.Page[models.Property], error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()
	return database.FindPage[models.Property](ctx, r.coll, query.SearchFilter(q), query.SearchSort(), w, query.SearchProjection())
}

func (r *MongoPropertyRepo) Featured(ctx context.Context, limit int) ([]models.Property, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(query.ListingSort.Default()).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"featured": true, "status": models.StatusAvailable}, opts)
	if err != nil {
		return nil, database.WrapError("find featured properties", err)
	}
	items := make([]models.Property, 0, limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, database.WrapError("decode featured properties", err)
	}
	return items, nil
}

// IncrementViews uses $inc so concurrent viewers never overwrite each
// other's count.
func (r *MongoPropertyRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return database.WrapError("increment property views", err)
	}
	if res.MatchedCount == 0 {
		return database.WrapError("increment property views", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoPropertyRepo) AddImages(ctx context.Context, id primitive.ObjectID, images []models.Image) (*models.Property, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": bson.M{"$each": images}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Property
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p); err != nil {
		return nil, database.WrapError("add property images", err)
	}
	return &p, nil
}
