package userRepo

import (
	"context"
	"time"

	"estatehub/database/query"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user; a taken email yields database.ErrDuplicate.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// GetByEmail retrieves a user by its (lower-cased) email, password hash included.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// UpdateLastLogin stamps the login time.
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	// FindPage lists users matching filter.
	FindPage(ctx context.Context, filter bson.M, sort bson.D, w query.Window) (query.Page[models.User], error)
}
