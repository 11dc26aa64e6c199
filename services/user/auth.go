package user

import (
	"context"
	"errors"
	"time"

	"estatehub/database"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Authenticate resolves a bearer token to an active user.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		return nil, utils.Unauthorized("Invalid or expired token")
	}
	if s.Revoked != nil {
		revoked, err := s.Revoked.IsRevoked(ctx, token)
		if err != nil {
			// Revocation lookups fail open; the token is still signature-checked.
			utils.GetLogger().Warn("Authenticate: revocation check failed", zap.Error(err))
		} else if revoked {
			return nil, utils.Unauthorized("Token has been revoked")
		}
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, utils.Unauthorized("Invalid or expired token")
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.Unauthorized("User no longer exists")
		}
		return nil, utils.Internal(err)
	}
	if !u.IsActive {
		return nil, utils.Unauthorized("Account is deactivated")
	}
	return &Principal{User: u, Claims: claims, Token: token}, nil
}

// Logout revokes token until it would have expired.
func (s *DefaultUserService) Logout(ctx context.Context, token string, claims *utils.TokenClaims) error {
	if s.Revoked == nil {
		return nil
	}
	until := time.Now().Add(s.Tokens.TTL())
	if claims != nil && !claims.ExpiresAt.IsZero() {
		until = claims.ExpiresAt
	}
	if err := s.Revoked.Revoke(ctx, token, until); err != nil {
		return utils.Internal(err)
	}
	return nil
}
