package user

import (
	"context"

	userRepo "estatehub/database/repository/user"
	"estatehub/database/query"
	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, token string, claims *utils.TokenClaims) error
	Authenticate(ctx context.Context, token string) (*Principal, error)

	// Account
	Me(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, req ProfileUpdateRequest) (*models.User, error)
	ChangePassword(ctx context.Context, id primitive.ObjectID, req PasswordChangeRequest) error

	// Admin
	ListUsers(ctx context.Context, role *models.Role, w query.Window) (query.Page[models.User], error)
	SetRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*models.User, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Tokens  *utils.TokenIssuer
	Revoked utils.TokenStore // nil disables revocation
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenIssuer, revoked utils.TokenStore) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Tokens: tokens, Revoked: revoked}
}
