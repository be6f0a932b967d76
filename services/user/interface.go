package user

import "craftlink/models"

// RegistrationInput carries the fields accepted at signup.
type RegistrationInput struct {
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	Name            string   `json:"name" binding:"required"`
	Role            string   `json:"role" binding:"required"`
	Company         string   `json:"company"`
	Bio             string   `json:"bio"`
	Photo           string   `json:"photo"`
	Specialty       string   `json:"specialty"`
	Specialties     []string `json:"specialties"`
	Certifications  []string `json:"certifications"`
	YearsExperience int      `json:"yearsExperience"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers are left
// untouched.
type ProfileUpdate struct {
	Name            *string   `json:"name"`
	Company         *string   `json:"company"`
	Bio             *string   `json:"bio"`
	Photo           *string   `json:"photo"`
	Specialty       *string   `json:"specialty"`
	Specialties     *[]string `json:"specialties"`
	Certifications  *[]string `json:"certifications"`
	YearsExperience *int      `json:"yearsExperience"`
}

// UserService manages accounts for both realtors and contractors.
type UserService interface {
	// Register creates an account and returns it with a signed token.
	Register(input RegistrationInput) (*models.User, string, error)
	// Authenticate verifies credentials and returns the user with a token.
	Authenticate(email, password string) (*models.User, string, error)
	// GetUserByID retrieves a user by id.
	GetUserByID(id string) (*models.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateProfile applies a partial profile update.
	UpdateProfile(id string, upd ProfileUpdate) (*models.User, error)
	// DeleteUser removes an account.
	DeleteUser(id string) error
	// RevokeToken invalidates an issued token.
	RevokeToken(token string) error
}
