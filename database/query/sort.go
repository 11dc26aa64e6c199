package query

import (
	"strings"

	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// SortSpec maps public sort keys to document fields and holds the default.
type SortSpec struct {
	Fields   map[string]string
	Fallback bson.D
}

var (
	ListingSort = SortSpec{
		Fields: map[string]string{
			"price":     "price",
			"createdAt": "createdAt",
			"updatedAt": "updatedAt",
			"views":     "views",
			"name":      "name",
			"featured":  "featured",
		},
		Fallback: bson.D{{Key: "createdAt", Value: -1}},
	}

	ServiceSort = SortSpec{
		Fields: map[string]string{
			"featured":  "featured",
			"order":     "order",
			"title":     "title",
			"createdAt": "createdAt",
			"views":     "metadata.views",
			"inquiries": "metadata.inquiries",
		},
		Fallback: bson.D{{Key: "featured", Value: -1}, {Key: "order", Value: 1}},
	}

	ContactSort = SortSpec{
		Fields: map[string]string{
			"createdAt": "createdAt",
			"updatedAt": "updatedAt",
			"status":    "status",
			"priority":  "priority",
			"name":      "name",
		},
		Fallback: bson.D{{Key: "createdAt", Value: -1}},
	}
)

// Parse reads a comma separated list such as "-price,createdAt". A leading
// "-" sorts descending. An empty string yields the fallback. The result
// always ends with _id so that page windows never overlap on ties.
func (s SortSpec) Parse(raw string) (bson.D, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return withTiebreak(s.Fallback), nil
	}
	var out bson.D
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dir := 1
		if strings.HasPrefix(part, "-") {
			dir = -1
			part = part[1:]
		} else if strings.HasPrefix(part, "+") {
			part = part[1:]
		}
		field, ok := s.Fields[part]
		if !ok {
			return nil, utils.Validation("Invalid sort field").
				WithDetails([]utils.FieldError{{Field: "sort", Message: "unknown field " + part}})
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		out = append(out, bson.E{Key: field, Value: dir})
	}
	if len(out) == 0 {
		return withTiebreak(s.Fallback), nil
	}
	return withTiebreak(out), nil
}

// Default is the fallback order with the id tiebreak.
func (s SortSpec) Default() bson.D {
	return withTiebreak(s.Fallback)
}

func withTiebreak(d bson.D) bson.D {
	out := make(bson.D, 0, len(d)+1)
	for _, e := range d {
		if e.Key == "_id" {
			return append(out, d...)
		}
	}
	out = append(out, d...)
	return append(out, bson.E{Key: "_id", Value: 1})
}
