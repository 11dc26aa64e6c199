package property

import (
	"io"

	"estatehub/models"
)

type FeaturesRequest struct {
	Bedrooms  int     `json:"bedrooms" binding:"gte=0,lte=100"`
	Bathrooms int     `json:"bathrooms" binding:"gte=0,lte=100"`
	Area      float64 `json:"area" binding:"gte=0"`
	AreaUnit  string  `json:"areaUnit" binding:"omitempty,oneof=sqft sqm"`
	Parking   int     `json:"parking" binding:"gte=0"`
	YearBuilt int     `json:"yearBuilt" binding:"omitempty,gte=1800,lte=2100"`
	Floors    int     `json:"floors" binding:"omitempty,gte=0,lte=300"`
}

func (f FeaturesRequest) toModel() models.PropertyFeatures {
	return models.PropertyFeatures{
		Bedrooms:  f.Bedrooms,
		Bathrooms: f.Bathrooms,
		Area:      f.Area,
		AreaUnit:  f.AreaUnit,
		Parking:   f.Parking,
		YearBuilt: f.YearBuilt,
		Floors:    f.Floors,
	}
}

type CreatePropertyRequest struct {
	Name        string                  `json:"name" binding:"required,min=3,max=200"`
	Description string                  `json:"description" binding:"required,min=10,max=5000"`
	Category    models.PropertyCategory `json:"category" binding:"required,oneof=Residential Commercial"`
	Subcategory models.Subcategory      `json:"subcategory" binding:"required"`
	Location    string                  `json:"location" binding:"required,min=2,max=300"`
	Price       float64                 `json:"price" binding:"required,gte=0"`
	Status      models.PropertyStatus   `json:"status" binding:"omitempty,oneof=Available Pending Sold Rented 'Off Market'"`
	Type        models.TransactionType  `json:"type" binding:"required,oneof=Buy Sell 'Lease Out'"`
	Featured    bool                    `json:"featured"`
	Features    FeaturesRequest         `json:"features"`
	Amenities   []string                `json:"amenities" binding:"omitempty,max=50,dive,min=1,max=100"`
}

// UpdatePropertyRequest is a partial update; nil fields are left alone.
type UpdatePropertyRequest struct {
	Name        *string                  `json:"name" binding:"omitempty,min=3,max=200"`
	Description *string                  `json:"description" binding:"omitempty,min=10,max=5000"`
	Category    *models.PropertyCategory `json:"category" binding:"omitempty,oneof=Residential Commercial"`
	Subcategory *models.Subcategory      `json:"subcategory"`
	Location    *string                  `json:"location" binding:"omitempty,min=2,max=300"`
	Price       *float64                 `json:"price" binding:"omitempty,gte=0"`
	Status      *models.PropertyStatus   `json:"status" binding:"omitempty,oneof=Available Pending Sold Rented 'Off Market'"`
	Type        *models.TransactionType  `json:"type" binding:"omitempty,oneof=Buy Sell 'Lease Out'"`
	Featured    *bool                    `json:"featured"`
	Features    *FeaturesRequest         `json:"features"`
	Amenities   *[]string                `json:"amenities" binding:"omitempty,max=50"`
}

// ImageUpload is one file received for a listing.
type ImageUpload struct {
	Name string
	Body io.Reader
}
