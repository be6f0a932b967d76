package user

import (
	"fmt"

	userRepo "craftlink/database/repository/user"
	"craftlink/models"
	"craftlink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthSessions records issued tokens server-side so they can be revoked
// before their JWT expiry.
type AuthSessions interface {
	Store(token, userID string) error
	Revoke(token string) error
}

// redisAuthSessions is the production session store backed by the auth cache.
type redisAuthSessions struct{}

func (redisAuthSessions) Store(token, userID string) error {
	return utils.StoreAuthToken(token, userID)
}

func (redisAuthSessions) Revoke(token string) error {
	return utils.RevokeAuthToken(token)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions AuthSessions
}

func (s *DefaultUserService) sessions() AuthSessions {
	if s.Sessions != nil {
		return s.Sessions
	}
	return redisAuthSessions{}
}

// Register creates an account and returns it with a signed token.
func (s *DefaultUserService) Register(input RegistrationInput) (*models.User, string, error) {
	if input.Role != models.RoleRealtor && input.Role != models.RoleContractor {
		return nil, "", ErrInvalidRole
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:              uuid.New().String(),
		Email:           input.Email,
		PasswordHash:    string(hash),
		Name:            input.Name,
		Role:            input.Role,
		Company:         input.Company,
		Bio:             input.Bio,
		Photo:           input.Photo,
		Specialty:       input.Specialty,
		Specialties:     input.Specialties,
		Certifications:  input.Certifications,
		YearsExperience: input.YearsExperience,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	utils.GetLogger().Info("user registered",
		zap.String("userID", usr.ID), zap.String("role", usr.Role))
	return usr, token, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if usr == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, utils.AuthTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.sessions().Store(token, usr.ID); err != nil {
		return "", err
	}
	return token, nil
}

// GetUserByID retrieves a user by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return usr, nil
}

// UpdateProfile applies a partial profile update.
func (s *DefaultUserService) UpdateProfile(id string, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Company != nil {
		set["company"] = *upd.Company
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Photo != nil {
		set["photo"] = *upd.Photo
	}
	if upd.Specialty != nil {
		set["specialty"] = *upd.Specialty
	}
	if upd.Specialties != nil {
		set["specialties"] = *upd.Specialties
	}
	if upd.Certifications != nil {
		set["certifications"] = *upd.Certifications
	}
	if upd.YearsExperience != nil {
		set["yearsExperience"] = *upd.YearsExperience
	}

	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(id, set); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(id)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

// RevokeToken invalidates an issued token.
func (s *DefaultUserService) RevokeToken(token string) error {
	return s.sessions().Revoke(token)
}
