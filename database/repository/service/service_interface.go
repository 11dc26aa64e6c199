package serviceRepo

import (
	"context"

	"estatehub/database/query"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository defines methods for agency service data access.
type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindPage(ctx context.Context, f query.ServiceFilter, sort bson.D, w query.Window) (query.Page[models.Service], error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	IncrementInquiries(ctx context.Context, id primitive.ObjectID) error
	// Categories counts active services per category.
	Categories(ctx context.Context) ([]CategoryCount, error)
}

type CategoryCount struct {
	Category models.ServiceCategory `bson:"_id" json:"category"`
	Count    int64                  `bson:"count" json:"count"`
	Featured int64                  `bson:"featured" json:"featured"`
}
