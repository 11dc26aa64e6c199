package routes

import (
	"time"

	"estatehub/config"
	"estatehub/handlers"
	"estatehub/middleware"
	"estatehub/models"
	"estatehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.Health)
}

// RegisterAuthRoutes registers account endpoints under a tighter rate limit.
func RegisterAuthRoutes(rg *gin.RouterGroup, hb *handlers.HandlerBundle, cfg config.Config) {
	api := rg.Group("/auth")
	api.Use(middleware.RateLimit("auth", cfg.AuthRequestsPer15Min, 15*time.Minute))
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		protected := api.Group("")
		protected.Use(middleware.Authenticate(hb.Authenticator))
		protected.GET("/me", hb.Auth.Me)
		protected.PUT("/me", hb.Auth.UpdateMe)
		protected.PUT("/password", hb.Auth.ChangePassword)
		protected.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterUserRoutes registers the admin account endpoints.
func RegisterUserRoutes(rg *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := rg.Group("/users")
	api.Use(middleware.Authenticate(hb.Authenticator), middleware.RequireRoles(models.RoleAdmin))
	{
		api.GET("", hb.Users.ListUsers)
		api.PATCH("/:id/role", hb.Users.SetRole)
		api.PATCH("/:id/status", hb.Users.SetStatus)
	}
}

// RegisterPropertyRoutes registers listing endpoints. Reads are public.
func RegisterPropertyRoutes(rg *gin.RouterGroup, hb *handlers.HandlerBundle, cfg config.Config) {
	auth := middleware.Authenticate(hb.Authenticator)
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleAgent)
	admin := middleware.RequireRoles(models.RoleAdmin)

	api := rg.Group("/properties")
	{
		api.GET("", hb.Properties.ListProperties)
		api.GET("/search", hb.Properties.SearchProperties)
		api.GET("/featured", hb.Properties.FeaturedProperties)
		api.GET("/stats", auth, staff, hb.Properties.Stats)
		api.GET("/:id", hb.Properties.GetProperty)

		api.POST("", auth, staff, hb.Properties.CreateProperty)
		api.PUT("/:id", auth, staff, hb.Properties.UpdateProperty)
		api.DELETE("/:id", auth, admin, hb.Properties.DeleteProperty)
		api.POST("/:id/images", auth, staff,
			middleware.ImageUpload("images", cfg.MaxUploadBytes, cfg.MaxUploadFiles),
			hb.Properties.UploadImages)
	}
}

// RegisterServiceRoutes registers agency service endpoints. A valid admin
// token on the read routes reveals inactive services.
func RegisterServiceRoutes(rg *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := middleware.Authenticate(hb.Authenticator)
	optional := middleware.OptionalAuth(hb.Authenticator)
	admin := middleware.RequireRoles(models.RoleAdmin)

	api := rg.Group("/services")
	{
		api.GET("", optional, hb.Services.ListServices)
		api.GET("/categories", hb.Services.Categories)
		api.GET("/:id", optional, hb.Services.GetService)
		api.POST("", auth, admin, hb.Services.CreateService)
		api.PUT("/:id", auth, admin, hb.Services.UpdateService)
		api.DELETE("/:id", auth, admin, hb.Services.DeleteService)
	}
}

// RegisterContactRoutes registers the public form and the staff inbox.
func RegisterContactRoutes(rg *gin.RouterGroup, hb *handlers.HandlerBundle, cfg config.Config) {
	auth := middleware.Authenticate(hb.Authenticator)
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleAgent)
	admin := middleware.RequireRoles(models.RoleAdmin)

	api := rg.Group("/contact")
	{
		api.POST("", middleware.RateLimit("contact", cfg.ContactRequestsPerHour, time.Hour), hb.Contacts.Submit)
		api.GET("", auth, staff, hb.Contacts.List)
		api.GET("/stats", auth, staff, hb.Contacts.Stats)
		api.GET("/:id", auth, staff, hb.Contacts.Get)
		api.PUT("/:id", auth, staff, hb.Contacts.Update)
		api.DELETE("/:id", auth, admin, hb.Contacts.Delete)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAny(cfg.AllowedOrigins()),
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)

	api := r.Group("/api")
	api.Use(middleware.RateLimit("global", cfg.MaxRequestsPerMin, time.Minute))

	RegisterAuthRoutes(api, hb, cfg)
	RegisterUserRoutes(api, hb)
	RegisterPropertyRoutes(api, hb, cfg)
	RegisterServiceRoutes(api, hb)
	RegisterContactRoutes(api, hb, cfg)

	r.NoRoute(utils.NoRoute)
}

// gin-contrib/cors rejects a wildcard origin combined with credentials.
func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
