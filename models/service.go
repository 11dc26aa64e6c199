package models

import (
	"strconv"
	"time"

	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceCategory string

const (
	ServiceBuying     ServiceCategory = "buying"
	ServiceSelling    ServiceCategory = "selling"
	ServiceLeasing    ServiceCategory = "leasing"
	ServiceConsulting ServiceCategory = "consulting"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case ServiceBuying, ServiceSelling, ServiceLeasing, ServiceConsulting:
		return true
	}
	return false
}

type PricingType string

const (
	PricingFree         PricingType = "free"
	PricingFixed        PricingType = "fixed"
	PricingHourly       PricingType = "hourly"
	PricingPercentage   PricingType = "percentage"
	PricingConsultation PricingType = "consultation"
)

func (p PricingType) Valid() bool {
	switch p {
	case PricingFree, PricingFixed, PricingHourly, PricingPercentage, PricingConsultation:
		return true
	}
	return false
}

type Pricing struct {
	Type   PricingType `bson:"type" json:"type"`
	Amount float64     `bson:"amount" json:"amount"`
}

// FormatPrice renders a service price for display.
func FormatPrice(amount float64, mode PricingType) string {
	switch {
	case mode == PricingFree:
		return "Free"
	case mode == PricingConsultation || amount == 0:
		return "Contact for pricing"
	case mode == PricingHourly:
		return utils.FormatCurrency(amount) + "/hour"
	case mode == PricingPercentage:
		return strconv.FormatFloat(amount, 'f', -1, 64) + "%"
	}
	return utils.FormatCurrency(amount)
}

type ServiceMetadata struct {
	Views     int64 `bson:"views" json:"views"`
	Inquiries int64 `bson:"inquiries" json:"inquiries"`
}

// Service is an agency service offered alongside property listings.
type Service struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Icon           string             `bson:"icon" json:"icon"`
	Features       []string           `bson:"features" json:"features"`
	Category       ServiceCategory    `bson:"category" json:"category"`
	Pricing        Pricing            `bson:"pricing" json:"pricing"`
	FormattedPrice string             `bson:"formattedPrice" json:"formattedPrice"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	Featured       bool               `bson:"featured" json:"featured"`
	Order          int                `bson:"order" json:"order"`
	Metadata       ServiceMetadata    `bson:"metadata" json:"metadata"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize fills defaults and recomputes derived fields.
func (s *Service) Normalize() {
	if s.Pricing.Type == "" {
		s.Pricing.Type = PricingConsultation
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	s.FormattedPrice = FormatPrice(s.Pricing.Amount, s.Pricing.Type)
}
