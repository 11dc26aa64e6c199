package offering

import (
	"context"

	"estatehub/database/query"
	serviceRepo "estatehub/database/repository/service"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OfferingService manages the agency services shown next to listings.
type OfferingService interface {
	ListServices(ctx context.Context, params query.ServiceParams, rawSort string, w query.Window, isAdmin bool) (query.Page[models.Service], error)
	GetService(ctx context.Context, id primitive.ObjectID, isAdmin bool) (*models.Service, error)
	CreateService(ctx context.Context, req ServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, id primitive.ObjectID, req ServiceUpdateRequest) (*models.Service, error)
	DeleteService(ctx context.Context, id primitive.ObjectID) error
	Categories(ctx context.Context) ([]serviceRepo.CategoryCount, error)
}

type ViewRecorder interface {
	Record(id primitive.ObjectID)
}

type DefaultOfferingService struct {
	Repo  serviceRepo.ServiceRepository
	Views ViewRecorder
}

func NewOfferingService(repo serviceRepo.ServiceRepository, views ViewRecorder) *DefaultOfferingService {
	return &DefaultOfferingService{Repo: repo, Views: views}
}

type PricingRequest struct {
	Type   models.PricingType `json:"type" binding:"required,oneof=free fixed hourly percentage consultation"`
	Amount float64            `json:"amount" binding:"gte=0"`
}

type ServiceRequest struct {
	Title       string                 `json:"title" binding:"required,min=3,max=150"`
	Description string                 `json:"description" binding:"required,min=10,max=2000"`
	Icon        string                 `json:"icon" binding:"omitempty,max=100"`
	Features    []string               `json:"features" binding:"omitempty,max=30,dive,min=1,max=200"`
	Category    models.ServiceCategory `json:"category" binding:"required,oneof=buying selling leasing consulting"`
	Pricing     PricingRequest         `json:"pricing"`
	IsActive    *bool                  `json:"isActive"`
	Featured    bool                   `json:"featured"`
	Order       int                    `json:"order" binding:"gte=0"`
}

type ServiceUpdateRequest struct {
	Title       *string                 `json:"title" binding:"omitempty,min=3,max=150"`
	Description *string                 `json:"description" binding:"omitempty,min=10,max=2000"`
	Icon        *string                 `json:"icon" binding:"omitempty,max=100"`
	Features    *[]string               `json:"features" binding:"omitempty,max=30"`
	Category    *models.ServiceCategory `json:"category" binding:"omitempty,oneof=buying selling leasing consulting"`
	Pricing     *PricingRequest         `json:"pricing"`
	IsActive    *bool                   `json:"isActive"`
	Featured    *bool                   `json:"featured"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}
