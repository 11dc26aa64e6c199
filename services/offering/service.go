package offering

import (
	"context"
	"errors"
	"strings"

	"estatehub/database"
	"estatehub/database/query"
	serviceRepo "estatehub/database/repository/service"
	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return utils.NotFound("Service")
	case errors.Is(err, database.ErrDuplicate):
		return utils.Duplicate("title")
	}
	return utils.AsAppError(err)
}

// ListServices orders by featured then display order. Only admins may pick
// another order or see inactive services.
func (s *DefaultOfferingService) ListServices(ctx context.Context, params query.ServiceParams, rawSort string, w query.Window, isAdmin bool) (query.Page[models.Service], error) {
	sort := query.ServiceSort.Default()
	if isAdmin && rawSort != "" {
		parsed, err := query.ServiceSort.Parse(rawSort)
		if err != nil {
			return query.Page[models.Service]{}, err
		}
		sort = parsed
	}
	page, err := s.Repo.FindPage(ctx, query.BuildServiceFilter(params, isAdmin), sort, w)
	if err != nil {
		return query.Page[models.Service]{}, mapRepoError(err)
	}
	return page, nil
}

// GetService hides inactive services from everyone but admins, as the
// list does.
func (s *DefaultOfferingService) GetService(ctx context.Context, id primitive.ObjectID, isAdmin bool) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !svc.IsActive && !isAdmin {
		return nil, utils.NotFound("Service")
	}
	if s.Views != nil {
		s.Views.Record(id)
	}
	return svc, nil
}

func (s *DefaultOfferingService) CreateService(ctx context.Context, req ServiceRequest) (*models.Service, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	svc := &models.Service{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Icon:        req.Icon,
		Features:    req.Features,
		Category:    req.Category,
		Pricing:     models.Pricing{Type: req.Pricing.Type, Amount: req.Pricing.Amount},
		IsActive:    active,
		Featured:    req.Featured,
		Order:       req.Order,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, mapRepoError(err)
	}
	utils.GetLogger().Info("Service created", zap.String("id", svc.ID.Hex()), zap.String("title", svc.Title))
	return svc, nil
}

// UpdateService applies the non-nil fields; formattedPrice follows pricing.
func (s *DefaultOfferingService) UpdateService(ctx context.Context, id primitive.ObjectID, req ServiceUpdateRequest) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if req.Title != nil {
		svc.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.Features != nil {
		svc.Features = *req.Features
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Pricing != nil {
		svc.Pricing = models.Pricing{Type: req.Pricing.Type, Amount: req.Pricing.Amount}
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if req.Featured != nil {
		svc.Featured = *req.Featured
	}
	if req.Order != nil {
		svc.Order = *req.Order
	}
	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, mapRepoError(err)
	}
	return svc, nil
}

func (s *DefaultOfferingService) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	utils.GetLogger().Info("Service deleted", zap.String("id", id.Hex()))
	return nil
}

func (s *DefaultOfferingService) Categories(ctx context.Context) ([]serviceRepo.CategoryCount, error) {
	out, err := s.Repo.Categories(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return out, nil
}
