// File: database/repository/connection/interface.go
package connectionRepo

import (
	"errors"

	"craftlink/models"
)

// Sentinel errors for connection data access.
var (
	ErrConnectionNotFound = errors.New("connection not found")
	ErrConnectionExists   = errors.New("connection already exists")
)

// ConnectionRepository defines data access for the networking graph.
type ConnectionRepository interface {
	// Create inserts a new pending connection edge. Returns
	// ErrConnectionExists when an edge already links the pair.
	Create(conn *models.Connection) error
	// Accept flips a pending edge addressed to userID to accepted.
	Accept(connectionID, userID string) error
	// GetByPair retrieves the edge between two users regardless of direction,
	// nil if absent.
	GetByPair(userA, userB string) (*models.Connection, error)
	// ListForUser retrieves edges touching the user, optionally filtered by
	// status ("" for all).
	ListForUser(userID, status string) ([]models.Connection, error)
	// ConnectedIDs returns the ids of users with an accepted edge to userID.
	ConnectedIDs(userID string) ([]string, error)
}
