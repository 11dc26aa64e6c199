package middleware

import (
	"context"
	"strings"

	"estatehub/models"
	"estatehub/services/user"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Authenticator resolves a bearer token to its caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.Principal, error)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// Authenticate rejects requests without a valid token.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.RespondError(c, utils.Unauthorized("Missing or invalid Authorization header"))
			return
		}
		p, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if p, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p == nil {
			utils.RespondError(c, utils.Unauthorized("Authentication required"))
			return
		}
		if !p.HasRole(roles...) {
			utils.RespondError(c, utils.Forbidden("You do not have permission to perform this action"))
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller, or nil.
func CurrentPrincipal(c *gin.Context) *user.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*user.Principal); ok {
			return p
		}
	}
	return nil
}

// IsStaff reports whether the caller is an agent or admin.
func IsStaff(c *gin.Context) bool {
	return CurrentPrincipal(c).HasRole(models.RoleAgent, models.RoleAdmin)
}

func IsAdmin(c *gin.Context) bool {
	return CurrentPrincipal(c).HasRole(models.RoleAdmin)
}
