package repository

import (
	contactRepo "estatehub/database/repository/contact"
	propertyRepo "estatehub/database/repository/property"
	serviceRepo "estatehub/database/repository/service"
	userRepo "estatehub/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the PropertyRepository interface and constructor.
type PropertyRepository = propertyRepo.PropertyRepository

type PropertyStats = propertyRepo.Stats

var NewMongoPropertyRepo = propertyRepo.NewMongoPropertyRepo

// Re-export the ServiceRepository interface and constructor.
type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

// Re-export the ContactRepository interface and constructor.
type ContactRepository = contactRepo.ContactRepository

type ContactStats = contactRepo.Stats

var NewMongoContactRepo = contactRepo.NewMongoContactRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepository = userRepo.NewMongoUserRepo

// Set bundles every repository the API needs.
type Set struct {
	Properties PropertyRepository
	Services   ServiceRepository
	Contacts   ContactRepository
	Users      UserRepository
}

// NewMongoSet builds all repositories on db.
func NewMongoSet(db *mongo.Database) Set {
	return Set{
		Properties: NewMongoPropertyRepo(db),
		Services:   NewMongoServiceRepo(db),
		Contacts:   NewMongoContactRepo(db),
		Users:      NewMongoUserRepository(db),
	}
}
