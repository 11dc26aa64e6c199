// Package query turns caller filter parameters into store predicates,
// sort keys and pagination windows. Nothing here touches the database.
package query

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingParams are the optional listing filters as supplied by a caller.
// A nil pointer or empty string means "not supplied".
type ListingParams struct {
	Category    *models.PropertyCategory
	Subcategory *models.Subcategory
	Type        *models.TransactionType
	Status      *models.PropertyStatus
	Featured    *string
	MinPrice    *float64
	MaxPrice    *float64
	Location    string
}

// PriceRange is an inclusive range; either bound may be absent.
type PriceRange struct {
	Min *float64
	Max *float64
}

func (r PriceRange) Contains(price float64) bool {
	if r.Min != nil && price < *r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// ListingFilter is the predicate applied to the property collection.
// Build it with BuildListingFilter and treat it as a value.
type ListingFilter struct {
	Category    *models.PropertyCategory
	Subcategory *models.Subcategory
	Type        *models.TransactionType
	Status      models.PropertyStatus
	Featured    *bool
	Price       *PriceRange
	Location    string
}

// BuildListingFilter assembles the predicate. Status defaults to Available.
func BuildListingFilter(p ListingParams) ListingFilter {
	f := ListingFilter{
		Category:    copyPtr(p.Category),
		Subcategory: copyPtr(p.Subcategory),
		Type:        copyPtr(p.Type),
		Status:      models.StatusAvailable,
		Location:    strings.TrimSpace(p.Location),
	}
	if p.Status != nil && *p.Status != "" {
		f.Status = *p.Status
	}
	if p.Featured != nil && *p.Featured != "" {
		v := ParseBool(*p.Featured)
		f.Featured = &v
	}
	if p.MinPrice != nil || p.MaxPrice != nil {
		f.Price = &PriceRange{Min: copyPtr(p.MinPrice), Max: copyPtr(p.MaxPrice)}
	}
	return f
}

// ParseBool coerces "true" to true and anything else to false.
func ParseBool(raw string) bool {
	return raw == "true"
}

// BSON renders the predicate for the mongo driver.
func (f ListingFilter) BSON() bson.M {
	m := bson.M{"status": f.Status}
	if f.Category != nil {
		m["category"] = *f.Category
	}
	if f.Subcategory != nil {
		m["subcategory"] = *f.Subcategory
	}
	if f.Type != nil {
		m["type"] = *f.Type
	}
	if f.Featured != nil {
		m["featured"] = *f.Featured
	}
	if f.Price != nil {
		rng := bson.M{}
		if f.Price.Min != nil {
			rng["$gte"] = *f.Price.Min
		}
		if f.Price.Max != nil {
			rng["$lte"] = *f.Price.Max
		}
		m["price"] = rng
	}
	if f.Location != "" {
		m["$or"] = containsAny(f.Location, "location", "name", "description")
	}
	return m
}

// Matches reports whether p satisfies the predicate, using the same
// semantics as BSON.
func (f ListingFilter) Matches(p *models.Property) bool {
	if p.Status != f.Status {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.Subcategory != nil && p.Subcategory != *f.Subcategory {
		return false
	}
	if f.Type != nil && p.Type != *f.Type {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Price != nil && !f.Price.Contains(p.Price) {
		return false
	}
	if f.Location != "" && !containsFold(f.Location, p.Location, p.Name, p.Description) {
		return false
	}
	return true
}

// containsAny builds a case-insensitive substring OR-match over fields.
func containsAny(text string, fields ...string) bson.A {
	rx := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: rx})
	}
	return or
}

// containsFold reports whether any haystack contains needle under Unicode
// simple case folding, the same folding the store applies to an "i" regex.
// strings.ToLower is not used because it disagrees with the store on runes
// such as U+017F (long s) and U+212A (Kelvin sign).
func containsFold(needle string, haystacks ...string) bool {
	n := utf8.RuneCountInString(needle)
	if n == 0 {
		return true
	}
	for _, h := range haystacks {
		if indexFold(h, needle, n) {
			return true
		}
	}
	return false
}

// indexFold compares needle against every n-rune window of h. Simple
// folding maps one rune to one rune, so matching windows have equal length
// in runes.
func indexFold(h, needle string, n int) bool {
	for i := range h {
		j, count := i, 0
		for j < len(h) && count < n {
			_, size := utf8.DecodeRuneInString(h[j:])
			j += size
			count++
		}
		if count < n {
			return false
		}
		if strings.EqualFold(h[i:j], needle) {
			return true
		}
	}
	return false
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
