package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactStatus string

const (
	ContactPending   ContactStatus = "pending"
	ContactContacted ContactStatus = "contacted"
	ContactResolved  ContactStatus = "resolved"
	ContactSpam      ContactStatus = "spam"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactPending, ContactContacted, ContactResolved, ContactSpam:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type ContactChannel string

const (
	ChannelEmail ContactChannel = "email"
	ChannelPhone ContactChannel = "phone"
	ChannelBoth  ContactChannel = "both"
)

// Contact is an inquiry submitted through the public contact form.
type Contact struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name             string              `bson:"name" json:"name"`
	Email            string              `bson:"email" json:"email"`
	Phone            string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject          string              `bson:"subject,omitempty" json:"subject,omitempty"`
	Message          string              `bson:"message" json:"message"`
	Property         *primitive.ObjectID `bson:"property,omitempty" json:"property,omitempty"`
	Service          *primitive.ObjectID `bson:"service,omitempty" json:"service,omitempty"`
	PreferredContact ContactChannel      `bson:"preferredContact" json:"preferredContact"`
	Status           ContactStatus       `bson:"status" json:"status"`
	Priority         Priority            `bson:"priority" json:"priority"`
	Tags             []string            `bson:"tags" json:"tags"`
	Notes            string              `bson:"notes,omitempty" json:"notes,omitempty"`
	AssignedTo       *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	RespondedAt      *time.Time          `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	Source           string              `bson:"source" json:"source"`
	IPAddress        string              `bson:"ipAddress,omitempty" json:"-"`
	UserAgent        string              `bson:"userAgent,omitempty" json:"-"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}
