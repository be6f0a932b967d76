// File: database/repository/user/interface.go
package userRepo

import (
	"craftlink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetManyByIDs retrieves the users matching the given IDs.
	GetManyByIDs(ids []string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a $set update to a user document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// FindContractors retrieves contractors matching any of the given
	// specialties (all contractors when empty), excluding the given IDs.
	FindContractors(specialties []string, excludeIDs []string) ([]models.User, error)
}
