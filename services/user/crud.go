package user

import (
	"context"
	"strings"

	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) Me(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of req.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req ProfileUpdateRequest) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, mapRepoError(err)
	}
	return u, nil
}

func (s *DefaultUserService) ChangePassword(ctx context.Context, id primitive.ObjectID, req PasswordChangeRequest) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return utils.Unauthorized("Current password is incorrect")
	}
	if err := VerifyPasswordComplexity(req.NewPassword); err != nil {
		return passwordError("newPassword", err)
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return utils.Internal(err)
	}
	u.PasswordHash = hash
	return mapRepoError(s.Repo.Update(ctx, u))
}
