package query

import (
	"strings"

	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactParams are the staff-side inquiry filters.
type ContactParams struct {
	Status     *models.ContactStatus
	Priority   *models.Priority
	Property   *primitive.ObjectID
	AssignedTo *primitive.ObjectID
	Search     string
}

type ContactFilter struct {
	Status     *models.ContactStatus
	Priority   *models.Priority
	Property   *primitive.ObjectID
	AssignedTo *primitive.ObjectID
	Search     string
}

func BuildContactFilter(p ContactParams) ContactFilter {
	return ContactFilter{
		Status:     copyPtr(p.Status),
		Priority:   copyPtr(p.Priority),
		Property:   copyPtr(p.Property),
		AssignedTo: copyPtr(p.AssignedTo),
		Search:     strings.TrimSpace(p.Search),
	}
}

func (f ContactFilter) BSON() bson.M {
	m := bson.M{}
	if f.Status != nil {
		m["status"] = *f.Status
	}
	if f.Priority != nil {
		m["priority"] = *f.Priority
	}
	if f.Property != nil {
		m["property"] = *f.Property
	}
	if f.AssignedTo != nil {
		m["assignedTo"] = *f.AssignedTo
	}
	if f.Search != "" {
		m["$or"] = containsAny(f.Search, "name", "email", "subject", "message")
	}
	return m
}

func (f ContactFilter) Matches(c *models.Contact) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.Priority != nil && c.Priority != *f.Priority {
		return false
	}
	if f.Property != nil && (c.Property == nil || *c.Property != *f.Property) {
		return false
	}
	if f.AssignedTo != nil && (c.AssignedTo == nil || *c.AssignedTo != *f.AssignedTo) {
		return false
	}
	if f.Search != "" && !containsFold(f.Search, c.Name, c.Email, c.Subject, c.Message) {
		return false
	}
	return true
}
