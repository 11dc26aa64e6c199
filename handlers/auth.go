package handlers

import (
	"net/http"

	"estatehub/middleware"
	"estatehub/services/user"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Users user.UserService
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RequestLogger(c).Info("User registered", zap.String("userID", resp.User.ID.Hex()))
	utils.Respond(c, http.StatusCreated, resp, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Users.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, resp, "Login successful")
}

func (h *AuthHandler) Me(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	u, err := h.Users.Me(c.Request.Context(), p.User.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, u, "Profile retrieved successfully")
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req user.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	p := middleware.CurrentPrincipal(c)
	u, err := h.Users.UpdateProfile(c.Request.Context(), p.User.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, u, "Profile updated successfully")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req user.PasswordChangeRequest
	if !bindJSON(c, &req) {
		return
	}
	p := middleware.CurrentPrincipal(c)
	if err := h.Users.ChangePassword(c.Request.Context(), p.User.ID, req); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Password changed successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	if err := h.Users.Logout(c.Request.Context(), p.Token, p.Claims); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Logged out successfully")
}
