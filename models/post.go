package models

import "time"

// Post types.
const (
	PostTypeProjectUpdate   = "project-update"
	PostTypeCertification   = "certification"
	PostTypeGeneral         = "general"
	PostTypeProjectShowcase = "project-showcase"
)

// Post is a social feed entry authored by a user.
type Post struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Content   string    `bson:"content" json:"content"`
	Images    []string  `bson:"images,omitempty" json:"images,omitempty"`
	ProjectID string    `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Type      string    `bson:"type" json:"type"`
	Likes     []string  `bson:"likes" json:"likes"` // user IDs, unique
	Comments  []Comment `bson:"comments" json:"comments"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidPostType reports whether t is one of the supported post types.
func ValidPostType(t string) bool {
	switch t {
	case PostTypeProjectUpdate, PostTypeCertification, PostTypeGeneral, PostTypeProjectShowcase:
		return true
	}
	return false
}
