package query

import (
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceParams are the optional service-listing filters.
type ServiceParams struct {
	Category *models.ServiceCategory
	Featured *string
	// Active is honoured for staff only; public callers always see active
	// services.
	Active *string
}

type ServiceFilter struct {
	Category *models.ServiceCategory
	Featured *bool
	Active   *bool
}

// BuildServiceFilter assembles the predicate. When staff is false the
// filter is pinned to active services.
func BuildServiceFilter(p ServiceParams, staff bool) ServiceFilter {
	f := ServiceFilter{Category: copyPtr(p.Category)}
	if p.Featured != nil && *p.Featured != "" {
		v := ParseBool(*p.Featured)
		f.Featured = &v
	}
	switch {
	case !staff:
		active := true
		f.Active = &active
	case p.Active != nil && *p.Active != "":
		v := ParseBool(*p.Active)
		f.Active = &v
	}
	return f
}

func (f ServiceFilter) BSON() bson.M {
	m := bson.M{}
	if f.Category != nil {
		m["category"] = *f.Category
	}
	if f.Featured != nil {
		m["featured"] = *f.Featured
	}
	if f.Active != nil {
		m["isActive"] = *f.Active
	}
	return m
}

func (f ServiceFilter) Matches(s *models.Service) bool {
	if f.Category != nil && s.Category != *f.Category {
		return false
	}
	if f.Featured != nil && s.Featured != *f.Featured {
		return false
	}
	if f.Active != nil && s.IsActive != *f.Active {
		return false
	}
	return true
}
