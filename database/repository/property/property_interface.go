package propertyRepo

import (
	"context"

	"estatehub/database/query"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyRepository defines methods for property data access.
type PropertyRepository interface {
	// Create inserts a new listing and sets its id and timestamps.
	Create(ctx context.Context, p *models.Property) error
	// GetByID retrieves a listing regardless of status.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	// Update writes the editable fields of p, refreshes updatedAt and reloads
	// p. View counts and images are left as stored.
	Update(ctx context.Context, p *models.Property) error
	// Delete removes a listing.
	Delete(ctx context.Context, id primitive.ObjectID) error
	// FindPage returns one window of listings matching f.
	FindPage(ctx context.Context, f query.ListingFilter, sort bson.D, w query.Window) (query.Page[models.Property], error)
	// Search ranks available listings by text relevance.
	Search(ctx context.Context, q string, w query.Window) (query.Page[models.Property], error)
	// Featured returns up to limit available featured listings, newest first.
	Featured(ctx context.Context, limit int) ([]models.Property, error)
	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	// AddImages appends images and returns the updated listing.
	AddImages(ctx context.Context, id primitive.ObjectID, images []models.Image) (*models.Property, error)
	// Stats aggregates listing counts and prices.
	Stats(ctx context.Context) (*Stats, error)
}

// Bucket is one group of an aggregation.
type Bucket struct {
	Key        string  `bson:"_id" json:"key"`
	Count      int64   `bson:"count" json:"count"`
	AvgPrice   float64 `bson:"avgPrice" json:"avgPrice"`
	TotalViews int64   `bson:"totalViews" json:"totalViews"`
}

// Stats summarises the listing collection.
type Stats struct {
	Total      int64    `json:"total"`
	Featured   int64    `json:"featured"`
	AvgPrice   float64  `json:"avgPrice"`
	MinPrice   float64  `json:"minPrice"`
	MaxPrice   float64  `json:"maxPrice"`
	TotalViews int64    `json:"totalViews"`
	ByCategory []Bucket `json:"byCategory"`
	ByType     []Bucket `json:"byType"`
	ByStatus   []Bucket `json:"byStatus"`
}
