package models

import "time"

// User roles.
const (
	RoleRealtor    = "realtor"
	RoleContractor = "contractor"
)

// User represents an account on the platform. A single collection holds both
// roles; contractor-only fields are omitted from realtor documents.
type User struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Name         string `bson:"name" json:"name"`
	Role         string `bson:"role" json:"role"` // "realtor" or "contractor"
	Photo        string `bson:"photo,omitempty" json:"photo,omitempty"`
	Company      string `bson:"company,omitempty" json:"company,omitempty"`
	Bio          string `bson:"bio,omitempty" json:"bio,omitempty"`

	// Realtor fields.
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`

	// Contractor fields.
	Specialty       string          `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Certifications  []string        `bson:"certifications,omitempty" json:"certifications,omitempty"`
	YearsExperience int             `bson:"yearsExperience,omitempty" json:"yearsExperience,omitempty"`
	Rating          float64         `bson:"rating,omitempty" json:"rating,omitempty"`
	Portfolio       []PortfolioItem `bson:"portfolio,omitempty" json:"portfolio,omitempty"`

	// Scheduling state, embedded on contractor documents.
	Availability    *Availability    `bson:"availability,omitempty" json:"availability,omitempty"`
	PendingMeetings []MeetingRequest `bson:"pendingMeetings,omitempty" json:"pendingMeetings,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PortfolioItem is a completed project showcased on a contractor profile.
type PortfolioItem struct {
	ID             string   `bson:"id" json:"id"`
	Title          string   `bson:"title" json:"title"`
	Description    string   `bson:"description" json:"description"`
	Images         []string `bson:"images,omitempty" json:"images,omitempty"`
	CompletionDate string   `bson:"completionDate" json:"completionDate"`
	ClientFeedback string   `bson:"clientFeedback,omitempty" json:"clientFeedback,omitempty"`
}

// IsContractor reports whether the user exposes availability for booking.
func (u *User) IsContractor() bool {
	return u.Role == RoleContractor
}
