package user

import (
	"context"

	"estatehub/database/query"
	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func (s *DefaultUserService) ListUsers(ctx context.Context, role *models.Role, w query.Window) (query.Page[models.User], error) {
	filter := bson.M{}
	if role != nil {
		filter["role"] = *role
	}
	page, err := s.Repo.FindPage(ctx, filter, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}, w)
	if err != nil {
		return query.Page[models.User]{}, mapRepoError(err)
	}
	return page, nil
}

func (s *DefaultUserService) SetRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, utils.Validation("Invalid role").
			WithDetails([]utils.FieldError{{Field: "role", Message: "must be one of [user agent admin]"}})
	}
	return s.modify(ctx, id, func(u *models.User) { u.Role = role })
}

func (s *DefaultUserService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.User, error) {
	return s.modify(ctx, id, func(u *models.User) { u.IsActive = active })
}

func (s *DefaultUserService) modify(ctx context.Context, id primitive.ObjectID, apply func(*models.User)) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	apply(u)
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, mapRepoError(err)
	}
	utils.GetLogger().Info("User updated by admin",
		zap.String("userId", u.ID.Hex()), zap.String("role", string(u.Role)), zap.Bool("active", u.IsActive))
	return u, nil
}
