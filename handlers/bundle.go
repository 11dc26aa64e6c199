package handlers

import (
	"estatehub/middleware"
	"estatehub/services/contact"
	"estatehub/services/offering"
	"estatehub/services/property"
	"estatehub/services/user"
	"estatehub/utils"
)

// HandlerBundle groups the endpoint handlers and what the routes need to
// guard them.
type HandlerBundle struct {
	Auth       *AuthHandler
	Users      *UserAdminHandler
	Properties *PropertyHandler
	Services   *ServiceHandler
	Contacts   *ContactHandler
	Health     *HealthHandler

	Authenticator middleware.Authenticator
}

func NewHandlerBundle(
	users user.UserService,
	properties property.PropertyService,
	services offering.OfferingService,
	contacts contact.ContactService,
	health *utils.HealthMonitor,
) *HandlerBundle {
	return &HandlerBundle{
		Auth:          &AuthHandler{Users: users},
		Users:         &UserAdminHandler{Users: users},
		Properties:    &PropertyHandler{Properties: properties},
		Services:      &ServiceHandler{Services: services},
		Contacts:      &ContactHandler{Contacts: contacts},
		Health:        &HealthHandler{Monitor: health},
		Authenticator: users,
	}
}
