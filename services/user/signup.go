package user

import (
	"context"
	"strings"

	"estatehub/models"
	"estatehub/utils"

	"go.uber.org/zap"
)

// Register creates a user account with the default role and signs a token.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, passwordError("password", err)
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, utils.Internal(err)
	}

	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
		Phone:        strings.TrimSpace(req.Phone),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, mapRepoError(err)
	}

	token, err := s.Tokens.GenerateToken(u.ID.Hex(), string(u.Role))
	if err != nil {
		return nil, utils.Internal(err)
	}
	utils.GetLogger().Info("User registered", zap.String("userId", u.ID.Hex()))
	return &AuthResponse{Token: token, User: u}, nil
}
