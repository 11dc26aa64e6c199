package property

import (
	"context"
	"strings"

	"estatehub/database/query"
	propertyRepo "estatehub/database/repository/property"
	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 20
)

func (s *DefaultPropertyService) ListProperties(ctx context.Context, params query.ListingParams, sort bson.D, w query.Window) (query.Page[models.Property], error) {
	if params.Subcategory != nil && params.Category != nil && !params.Category.Allows(*params.Subcategory) {
		// No listing can match; answer without a round trip.
		return query.NewPage([]models.Property{}, w, 0), nil
	}
	if sort == nil {
		sort = query.ListingSort.Default()
	}
	page, err := s.Repo.FindPage(ctx, query.BuildListingFilter(params), sort, w)
	if err != nil {
		return query.Page[models.Property]{}, mapRepoError(err)
	}
	return page, nil
}

// SearchProperties runs the ranked text search. It is separate from the
// location filter of ListProperties and keeps relevance ordering.
func (s *DefaultPropertyService) SearchProperties(ctx context.Context, q string, w query.Window) (query.SearchPage[models.Property], error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return query.SearchPage[models.Property]{}, utils.Validation("Search query is required").
			WithDetails([]utils.FieldError{{Field: "q", Message: "is required"}})
	}
	page, err := s.Repo.Search(ctx, q, w)
	if err != nil {
		return query.SearchPage[models.Property]{}, mapRepoError(err)
	}
	return query.SearchPage[models.Property]{Page: page, Query: q}, nil
}

func (s *DefaultPropertyService) FeaturedProperties(ctx context.Context, limit int) ([]models.Property, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxFeaturedLimit {
		limit = MaxFeaturedLimit
	}
	items, err := s.Repo.Featured(ctx, limit)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return items, nil
}

func (s *DefaultPropertyService) Stats(ctx context.Context) (*propertyRepo.Stats, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return stats, nil
}
