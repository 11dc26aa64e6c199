package property

import (
	"context"

	"estatehub/database/query"
	propertyRepo "estatehub/database/repository/property"
	"estatehub/models"
	"estatehub/services/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyService interface {
	// Reads
	ListProperties(ctx context.Context, params query.ListingParams, sort bson.D, w query.Window) (query.Page[models.Property], error)
	SearchProperties(ctx context.Context, q string, w query.Window) (query.SearchPage[models.Property], error)
	FeaturedProperties(ctx context.Context, limit int) ([]models.Property, error)
	GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Stats(ctx context.Context) (*propertyRepo.Stats, error)

	// Writes
	CreateProperty(ctx context.Context, req CreatePropertyRequest, createdBy *primitive.ObjectID) (*models.Property, error)
	UpdateProperty(ctx context.Context, id primitive.ObjectID, req UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, id primitive.ObjectID) error
	UploadImages(ctx context.Context, id primitive.ObjectID, files []ImageUpload) (*models.Property, error)
}

// ViewRecorder takes a view off the request path.
type ViewRecorder interface {
	Record(id primitive.ObjectID)
}

// DefaultPropertyService is the production implementation.
type DefaultPropertyService struct {
	Repo   propertyRepo.PropertyRepository
	Images storage.ImageStore
	Views  ViewRecorder
}

func NewPropertyService(repo propertyRepo.PropertyRepository, images storage.ImageStore, views ViewRecorder) *DefaultPropertyService {
	return &DefaultPropertyService{Repo: repo, Images: images, Views: views}
}
