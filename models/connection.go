package models

import "time"

// Connection statuses.
const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
)

// Work-history relationship kinds.
const (
	RelationshipColleague     = "colleague"
	RelationshipCollaboration = "project-collaboration"
)

// Connection is a directed networking edge from UserID to TargetID.
// Once accepted it is treated as mutual.
type Connection struct {
	ID          string      `bson:"id" json:"id"`
	UserID      string      `bson:"userId" json:"userId"`
	TargetID    string      `bson:"targetId" json:"targetId"`
	Status      string      `bson:"status" json:"status"`
	WorkHistory WorkHistory `bson:"workHistory,omitempty" json:"workHistory,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}

// WorkHistory records how the two users know each other.
type WorkHistory struct {
	CompanyName  string `bson:"companyName,omitempty" json:"companyName,omitempty"`
	ProjectID    string `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
}
