package connection

import (
	"errors"

	connectionRepo "craftlink/database/repository/connection"
	"craftlink/models"

	"github.com/google/uuid"
)

// ErrSelfConnection rejects a user connecting to themselves.
var ErrSelfConnection = errors.New("cannot connect to yourself")

// ConnectionService manages the networking graph between realtors and
// contractors.
type ConnectionService interface {
	// Request creates a pending connection toward targetID.
	Request(userID, targetID string, history models.WorkHistory) (*models.Connection, error)
	// Accept confirms a pending connection addressed to userID.
	Accept(userID, connectionID string) error
	// List retrieves the user's connections, optionally filtered by status.
	List(userID, status string) ([]models.Connection, error)
	// Network retrieves the ids of accepted connections.
	Network(userID string) ([]string, error)
}

// DefaultConnectionService is the production implementation.
type DefaultConnectionService struct {
	Repo connectionRepo.ConnectionRepository
}

// Request creates a pending connection toward targetID.
func (s *DefaultConnectionService) Request(userID, targetID string, history models.WorkHistory) (*models.Connection, error) {
	if userID == targetID {
		return nil, ErrSelfConnection
	}

	conn := &models.Connection{
		ID:          uuid.New().String(),
		UserID:      userID,
		TargetID:    targetID,
		Status:      models.ConnectionStatusPending,
		WorkHistory: history,
	}
	if err := s.Repo.Create(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Accept confirms a pending connection addressed to userID.
func (s *DefaultConnectionService) Accept(userID, connectionID string) error {
	return s.Repo.Accept(connectionID, userID)
}

// List retrieves the user's connections.
func (s *DefaultConnectionService) List(userID, status string) ([]models.Connection, error) {
	return s.Repo.ListForUser(userID, status)
}

// Network retrieves the ids of accepted connections.
func (s *DefaultConnectionService) Network(userID string) ([]string, error) {
	return s.Repo.ConnectedIDs(userID)
}
