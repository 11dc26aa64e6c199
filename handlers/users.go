package handlers

import (
	"net/http"

	"estatehub/models"
	"estatehub/services/user"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
)

// UserAdminHandler serves the admin-only account endpoints.
type UserAdminHandler struct {
	Users user.UserService
}

func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	role, err := enumQuery(c, "role", models.Role.Valid)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	w, err := windowQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	page, err := h.Users.ListUsers(c.Request.Context(), role, w)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, page, "Users retrieved successfully")
}

func (h *UserAdminHandler) SetRole(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}
	var body struct {
		Role models.Role `json:"role" binding:"required,oneof=user agent admin"`
	}
	if !bindJSON(c, &body) {
		return
	}
	u, err := h.Users.SetRole(c.Request.Context(), id, body.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, u, "User role updated successfully")
}

func (h *UserAdminHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}
	var body struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	u, err := h.Users.SetActive(c.Request.Context(), id, *body.IsActive)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, u, "User status updated successfully")
}
