package contact

import (
	"context"
	"time"

	"estatehub/database/query"
	contactRepo "estatehub/database/repository/contact"
	propertyRepo "estatehub/database/repository/property"
	serviceRepo "estatehub/database/repository/service"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactService interface {
	Submit(ctx context.Context, req SubmitRequest, meta RequestMeta) (*models.Contact, error)
	List(ctx context.Context, params query.ContactParams, sort bson.D, w query.Window) (query.Page[models.Contact], error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context) (*contactRepo.Stats, error)
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo       contactRepo.ContactRepository
	Properties propertyRepo.PropertyRepository
	Services   serviceRepo.ServiceRepository
	now        func() time.Time
}

func NewContactService(repo contactRepo.ContactRepository, properties propertyRepo.PropertyRepository, services serviceRepo.ServiceRepository) *DefaultContactService {
	return &DefaultContactService{Repo: repo, Properties: properties, Services: services, now: time.Now}
}

// SubmitRequest is the public contact form.
type SubmitRequest struct {
	Name             string                `json:"name" binding:"required,min=2,max=100"`
	Email            string                `json:"email" binding:"required,email,max=254"`
	Phone            string                `json:"phone" binding:"omitempty,max=30"`
	Subject          string                `json:"subject" binding:"omitempty,max=200"`
	Message          string                `json:"message" binding:"required,min=10,max=1000"`
	Property         string                `json:"property" binding:"omitempty,objectid"`
	Service          string                `json:"service" binding:"omitempty,objectid"`
	PreferredContact models.ContactChannel `json:"preferredContact" binding:"omitempty,oneof=email phone both"`
	Priority         models.Priority       `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Tags             []string              `json:"tags" binding:"omitempty,max=10,dive,max=50"`
	Source           string                `json:"source" binding:"omitempty,max=50"`
}

// RequestMeta is captured from the HTTP request, not the body.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// UpdateRequest is the staff-side edit. Nil fields are left alone; an empty
// assignedTo clears the assignment.
type UpdateRequest struct {
	Status     *models.ContactStatus `json:"status" binding:"omitempty,oneof=pending contacted resolved spam"`
	Priority   *models.Priority      `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Tags       *[]string             `json:"tags" binding:"omitempty,max=20"`
	Notes      *string               `json:"notes" binding:"omitempty,max=2000"`
	AssignedTo *string               `json:"assignedTo" binding:"omitempty,objectid"`
}
