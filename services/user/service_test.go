package user

import (
	"testing"

	"craftlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users []models.User
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			return &r.users[i], nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetManyByIDs(ids []string) ([]models.User, error) { return nil, nil }

func (r *memUserRepo) Create(user *models.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) Update(user *models.User) error { return nil }

func (r *memUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	for i := range r.users {
		if r.users[i].ID == id {
			if name, ok := updateDoc["name"].(string); ok {
				r.users[i].Name = name
			}
			if bio, ok := updateDoc["bio"].(string); ok {
				r.users[i].Bio = bio
			}
			return nil
		}
	}
	return ErrInvalidCredentials
}

func (r *memUserRepo) Delete(id string) error { return nil }

func (r *memUserRepo) FindContractors(specialties []string, excludeIDs []string) ([]models.User, error) {
	return nil, nil
}

// memAuthSessions records stored and revoked tokens.
type memAuthSessions struct {
	stored  []string
	revoked []string
}

func (s *memAuthSessions) Store(token, userID string) error {
	s.stored = append(s.stored, token)
	return nil
}

func (s *memAuthSessions) Revoke(token string) error {
	s.revoked = append(s.revoked, token)
	return nil
}

func newUserFixture() (*DefaultUserService, *memUserRepo, *memAuthSessions) {
	repo := &memUserRepo{}
	sessions := &memAuthSessions{}
	return &DefaultUserService{Repo: repo, Sessions: sessions}, repo, sessions
}

func contractorInput() RegistrationInput {
	return RegistrationInput{
		Email:     "pat@example.com",
		Password:  "hunter2hunter2",
		Name:      "Pat",
		Role:      models.RoleContractor,
		Specialty: "plumbing",
	}
}

func TestRegister_CreatesAccountAndToken(t *testing.T) {
	svc, repo, sessions := newUserFixture()

	usr, token, err := svc.Register(contractorInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if usr.ID == "" || usr.Role != models.RoleContractor {
		t.Fatalf("user mismatch: %+v", usr)
	}
	if token == "" || len(sessions.stored) != 1 || sessions.stored[0] != token {
		t.Fatalf("expected issued token recorded in the session store")
	}

	// The password is stored as a bcrypt hash, never verbatim.
	stored, err := repo.GetByEmail("pat@example.com")
	if err != nil || stored == nil {
		t.Fatalf("expected persisted user, got %v", err)
	}
	if stored.PasswordHash == "hunter2hunter2" {
		t.Fatalf("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	input := contractorInput()
	input.Role = "admin"
	if _, _, err := svc.Register(input); err != ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture()

	if _, _, err := svc.Register(contractorInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(contractorInput()); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate_VerifiesPassword(t *testing.T) {
	svc, _, _ := newUserFixture()

	if _, _, err := svc.Register(contractorInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	usr, token, err := svc.Authenticate("pat@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if usr.Email != "pat@example.com" || token == "" {
		t.Fatalf("unexpected login result: %+v token=%q", usr, token)
	}

	if _, _, err := svc.Authenticate("pat@example.com", "wrong-password"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Authenticate("nobody@example.com", "hunter2hunter2"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRevokeToken_ForwardsToSessionStore(t *testing.T) {
	svc, _, sessions := newUserFixture()

	if err := svc.RevokeToken("some-token"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "some-token" {
		t.Fatalf("expected token forwarded to the session store, got %v", sessions.revoked)
	}
}

func TestUpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newUserFixture()

	usr, _, err := svc.Register(contractorInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Patricia"
	updated, err := svc.UpdateProfile(usr.ID, ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Patricia" {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
	if updated.Bio != "" {
		t.Fatalf("expected untouched fields preserved, got bio %q", updated.Bio)
	}
}
