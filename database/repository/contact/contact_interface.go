package contactRepo

import (
	"context"

	"estatehub/database/query"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactRepository defines methods for inquiry data access.
type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindPage(ctx context.Context, f query.ContactFilter, sort bson.D, w query.Window) (query.Page[models.Contact], error)
	Stats(ctx context.Context) (*Stats, error)
}

type Count struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}

// Stats summarises inquiries by status and priority.
type Stats struct {
	Total      int64   `json:"total"`
	ByStatus   []Count `json:"byStatus"`
	ByPriority []Count `json:"byPriority"`
}
