package user

import (
	"context"
	"errors"
	"time"

	"estatehub/database"
	"estatehub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

// Login verifies the password and issues a token.
func (s *DefaultUserService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.Unauthorized(invalidCredentials)
		}
		return nil, utils.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.Unauthorized(invalidCredentials)
	}
	if !u.IsActive {
		return nil, utils.Unauthorized("Account is deactivated")
	}

	token, err := s.Tokens.GenerateToken(u.ID.Hex(), string(u.Role))
	if err != nil {
		return nil, utils.Internal(err)
	}

	now := time.Now().UTC()
	if err := s.Repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		utils.GetLogger().Warn("Login: failed to record last login", zap.String("userId", u.ID.Hex()), zap.Error(err))
	} else {
		u.LastLogin = &now
	}
	return &AuthResponse{Token: token, User: u}, nil
}
