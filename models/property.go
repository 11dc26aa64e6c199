package models

import (
	"fmt"
	"strings"
	"time"

	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyCategory string

const (
	CategoryResidential PropertyCategory = "Residential"
	CategoryCommercial  PropertyCategory = "Commercial"
)

type Subcategory string

const (
	SubApartment Subcategory = "Apartment"
	SubVilla     Subcategory = "Villa"
	SubHouse     Subcategory = "House"
	SubPenthouse Subcategory = "Penthouse"
	SubTownhouse Subcategory = "Townhouse"
	SubStudio    Subcategory = "Studio"

	SubOffice    Subcategory = "Office"
	SubRetail    Subcategory = "Retail"
	SubWarehouse Subcategory = "Warehouse"
	SubShowroom  Subcategory = "Showroom"
	SubBuilding  Subcategory = "Building"
	SubLand      Subcategory = "Land"
)

var subcategoriesByCategory = map[PropertyCategory][]Subcategory{
	CategoryResidential: {SubApartment, SubVilla, SubHouse, SubPenthouse, SubTownhouse, SubStudio},
	CategoryCommercial:  {SubOffice, SubRetail, SubWarehouse, SubShowroom, SubBuilding, SubLand},
}

func (c PropertyCategory) Valid() bool {
	_, ok := subcategoriesByCategory[c]
	return ok
}

// Subcategories lists the subcategories a category accepts.
func (c PropertyCategory) Subcategories() []Subcategory {
	return append([]Subcategory(nil), subcategoriesByCategory[c]...)
}

func (c PropertyCategory) Allows(s Subcategory) bool {
	for _, candidate := range subcategoriesByCategory[c] {
		if candidate == s {
			return true
		}
	}
	return false
}

// PropertyKind is a category together with one of its own subcategories.
// The zero value is not a valid kind; build one with NewPropertyKind.
type PropertyKind struct {
	category    PropertyCategory
	subcategory Subcategory
}

func NewPropertyKind(category PropertyCategory, subcategory Subcategory) (PropertyKind, error) {
	if !category.Valid() {
		return PropertyKind{}, fmt.Errorf("unknown category %q", category)
	}
	if !category.Allows(subcategory) {
		names := make([]string, 0, len(subcategoriesByCategory[category]))
		for _, s := range subcategoriesByCategory[category] {
			names = append(names, string(s))
		}
		return PropertyKind{}, fmt.Errorf("subcategory %q is not valid for %s (expected one of %s)",
			subcategory, category, strings.Join(names, ", "))
	}
	return PropertyKind{category: category, subcategory: subcategory}, nil
}

func (k PropertyKind) Category() PropertyCategory { return k.category }
func (k PropertyKind) Subcategory() Subcategory   { return k.subcategory }

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "Available"
	StatusPending   PropertyStatus = "Pending"
	StatusSold      PropertyStatus = "Sold"
	StatusRented    PropertyStatus = "Rented"
	StatusOffMarket PropertyStatus = "Off Market"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold, StatusRented, StatusOffMarket:
		return true
	}
	return false
}

type TransactionType string

const (
	TypeBuy      TransactionType = "Buy"
	TypeSell     TransactionType = "Sell"
	TypeLeaseOut TransactionType = "Lease Out"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeBuy, TypeSell, TypeLeaseOut:
		return true
	}
	return false
}

type PropertyFeatures struct {
	Bedrooms  int     `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int     `bson:"bathrooms" json:"bathrooms"`
	Area      float64 `bson:"area" json:"area"`
	AreaUnit  string  `bson:"areaUnit" json:"areaUnit"`
	Parking   int     `bson:"parking" json:"parking"`
	YearBuilt int     `bson:"yearBuilt,omitempty" json:"yearBuilt,omitempty"`
	Floors    int     `bson:"floors,omitempty" json:"floors,omitempty"`
}

type Image struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}

// Property is a listing offered for purchase, sale or lease.
type Property struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `bson:"name" json:"name"`
	Description    string              `bson:"description" json:"description"`
	Category       PropertyCategory    `bson:"category" json:"category"`
	Subcategory    Subcategory         `bson:"subcategory" json:"subcategory"`
	Location       string              `bson:"location" json:"location"`
	Price          float64             `bson:"price" json:"price"`
	FormattedPrice string              `bson:"formattedPrice" json:"formattedPrice"`
	Status         PropertyStatus      `bson:"status" json:"status"`
	Type           TransactionType     `bson:"type" json:"type"`
	Featured       bool                `bson:"featured" json:"featured"`
	Features       PropertyFeatures    `bson:"features" json:"features"`
	Amenities      []string            `bson:"amenities" json:"amenities"`
	Images         []Image             `bson:"images" json:"images"`
	Views          int64               `bson:"views" json:"views"`
	Score          float64             `bson:"score,omitempty" json:"score,omitempty"`
	CreatedBy      *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Kind returns the property's category and subcategory, validated.
func (p *Property) Kind() (PropertyKind, error) {
	return NewPropertyKind(p.Category, p.Subcategory)
}

func (p *Property) SetKind(k PropertyKind) {
	p.Category = k.category
	p.Subcategory = k.subcategory
}

// Normalize fills defaults and recomputes derived fields.
func (p *Property) Normalize() {
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	if p.Features.AreaUnit == "" {
		p.Features.AreaUnit = "sqft"
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Images == nil {
		p.Images = []Image{}
	}
	p.FormattedPrice = utils.FormatCurrency(p.Price)
}
