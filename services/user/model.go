package user

import (
	"estatehub/models"
	"estatehub/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest carries only the fields a user may change on
// their own account. Nil means unchanged.
type ProfileUpdateRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone  *string `json:"phone" binding:"omitempty,max=30"`
	Avatar *string `json:"avatar" binding:"omitempty,url"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=128"`
}

// AuthResponse contains the signed token and the account it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	User   *models.User
	Claims *utils.TokenClaims
	Token  string
}

func (p *Principal) HasRole(roles ...models.Role) bool {
	if p == nil || p.User == nil {
		return false
	}
	for _, r := range roles {
		if p.User.Role == r {
			return true
		}
	}
	return false
}
