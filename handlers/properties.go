package handlers

import (
	"net/http"

	"estatehub/database/query"
	"estatehub/middleware"
	"estatehub/models"
	"estatehub/services/property"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyHandler struct {
	Properties property.PropertyService
}

func listingParams(c *gin.Context) (query.ListingParams, error) {
	var (
		p   query.ListingParams
		err error
	)
	if p.Category, err = enumQuery(c, "category", models.PropertyCategory.Valid); err != nil {
		return p, err
	}
	if p.Subcategory, err = enumQuery[models.Subcategory](c, "subcategory", nil); err != nil {
		return p, err
	}
	if p.Type, err = enumQuery(c, "type", models.TransactionType.Valid); err != nil {
		return p, err
	}
	if p.Status, err = enumQuery(c, "status", models.PropertyStatus.Valid); err != nil {
		return p, err
	}
	if p.MinPrice, err = floatQuery(c, "minPrice"); err != nil {
		return p, err
	}
	if p.MaxPrice, err = floatQuery(c, "maxPrice"); err != nil {
		return p, err
	}
	p.Featured = optionalQuery(c, "featured")
	if loc := optionalQuery(c, "location"); loc != nil {
		p.Location = *loc
	}
	return p, nil
}

// ListProperties handles GET /api/properties.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	params, err := listingParams(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	sort, err := query.ListingSort.Parse(c.Query("sort"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	w, err := windowQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	page, err := h.Properties.ListProperties(c.Request.Context(), params, sort, w)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, page, "Properties retrieved successfully")
}

// SearchProperties handles GET /api/properties/search?q=.
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	w, err := windowQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	page, err := h.Properties.SearchProperties(c.Request.Context(), c.Query("q"), w)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, page, "Search completed successfully")
}

func (h *PropertyHandler) FeaturedProperties(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	items, err := h.Properties.FeaturedProperties(c.Request.Context(), limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if items == nil {
		items = []models.Property{}
	}
	utils.Respond(c, http.StatusOK, items, "Featured properties retrieved successfully")
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "property")
	if !ok {
		return
	}
	p, err := h.Properties.GetProperty(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, p, "Property retrieved successfully")
}

func (h *PropertyHandler) Stats(c *gin.Context) {
	stats, err := h.Properties.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, stats, "Property statistics retrieved successfully")
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req property.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	var createdBy *primitive.ObjectID
	if p := middleware.CurrentPrincipal(c); p != nil && p.User != nil {
		id := p.User.ID
		createdBy = &id
	}

	created, err := h.Properties.CreateProperty(c.Request.Context(), req, createdBy)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created, "Property created successfully")
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := pathID(c, "property")
	if !ok {
		return
	}
	var req property.UpdatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Properties.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated, "Property updated successfully")
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := pathID(c, "property")
	if !ok {
		return
	}
	if err := h.Properties.DeleteProperty(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Property deleted successfully")
}

// UploadImages handles POST /api/properties/:id/images. The files were
// checked by middleware.ImageUpload.
func (h *PropertyHandler) UploadImages(c *gin.Context) {
	id, ok := pathID(c, "property")
	if !ok {
		return
	}

	headers := middleware.UploadedFiles(c)
	uploads := make([]property.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			utils.RespondError(c, utils.InvalidFileField("Could not read "+fh.Filename))
			return
		}
		defer f.Close()
		uploads = append(uploads, property.ImageUpload{Name: fh.Filename, Body: f})
	}

	updated, err := h.Properties.UploadImages(c.Request.Context(), id, uploads)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated, "Images uploaded successfully")
}
