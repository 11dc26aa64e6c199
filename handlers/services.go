package handlers

import (
	"net/http"

	"estatehub/database/query"
	"estatehub/middleware"
	"estatehub/models"
	"estatehub/services/offering"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	Services offering.OfferingService
}

// ListServices handles GET /api/services. Only admins may override the
// sort order or see inactive services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	category, err := enumQuery(c, "category", models.ServiceCategory.Valid)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	w, err := windowQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	params := query.ServiceParams{
		Category: category,
		Featured: optionalQuery(c, "featured"),
		Active:   optionalQuery(c, "isActive"),
	}

	page, err := h.Services.ListServices(c.Request.Context(), params, c.Query("sort"), w, middleware.IsAdmin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, page, "Services retrieved successfully")
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	cats, err := h.Services.Categories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, cats, "Service categories retrieved successfully")
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	svc, err := h.Services.GetService(c.Request.Context(), id, middleware.IsAdmin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, svc, "Service retrieved successfully")
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req offering.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.Services.CreateService(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, svc, "Service created successfully")
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	var req offering.ServiceUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.Services.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, svc, "Service updated successfully")
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	if err := h.Services.DeleteService(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Service deleted successfully")
}
