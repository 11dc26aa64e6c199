package property

import (
	"context"
	"strings"

	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// GetProperty returns a listing and records the view in the background.
func (s *DefaultPropertyService) GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if s.Views != nil {
		s.Views.Record(id)
	}
	return p, nil
}

func (s *DefaultPropertyService) CreateProperty(ctx context.Context, req CreatePropertyRequest, createdBy *primitive.ObjectID) (*models.Property, error) {
	kind, err := validateKind(req.Category, req.Subcategory)
	if err != nil {
		return nil, err
	}
	p := &models.Property{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Price:       req.Price,
		Status:      req.Status,
		Type:        req.Type,
		Featured:    req.Featured,
		Features:    req.Features.toModel(),
		Amenities:   req.Amenities,
		CreatedBy:   createdBy,
	}
	p.SetKind(kind)
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, mapRepoError(err)
	}
	utils.GetLogger().Info("Property created", zap.String("id", p.ID.Hex()), zap.String("name", p.Name))
	return p, nil
}

// UpdateProperty applies a partial update. The kind is revalidated against
// the merged category and subcategory, and formattedPrice is recomputed.
func (s *DefaultPropertyService) UpdateProperty(ctx context.Context, id primitive.ObjectID, req UpdatePropertyRequest) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	category, sub := p.Category, p.Subcategory
	if req.Category != nil {
		category = *req.Category
	}
	if req.Subcategory != nil {
		sub = *req.Subcategory
	}
	kind, err := validateKind(category, sub)
	if err != nil {
		return nil, err
	}
	p.SetKind(kind)

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Location != nil {
		p.Location = strings.TrimSpace(*req.Location)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Features != nil {
		p.Features = req.Features.toModel()
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, mapRepoError(err)
	}
	return p, nil
}

// DeleteProperty removes the listing, then its images on a best-effort basis.
func (s *DefaultPropertyService) DeleteProperty(ctx context.Context, id primitive.ObjectID) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.cleanupImages(ctx, p.Images)
	utils.GetLogger().Info("Property deleted", zap.String("id", id.Hex()))
	return nil
}

func (s *DefaultPropertyService) cleanupImages(ctx context.Context, images []models.Image) {
	if s.Images == nil {
		return
	}
	for _, img := range images {
		if img.PublicID == "" {
			continue
		}
		if err := s.Images.Delete(ctx, img.PublicID); err != nil {
			utils.GetLogger().Warn("Failed to delete property image",
				zap.String("publicId", img.PublicID), zap.Error(err))
		}
	}
}
