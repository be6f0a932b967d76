package discovery

import (
	"context"
	"errors"
	"time"

	connectionRepo "craftlink/database/repository/connection"
	userRepo "craftlink/database/repository/user"
	"craftlink/models"
	"craftlink/services/connection"

	"github.com/google/uuid"
)

// Swipe actions.
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// Errors surfaced by the discovery service.
var (
	ErrSessionNotFound = errors.New("discovery session not found or expired")
	ErrDeckExhausted   = errors.New("no more contractors in this deck")
	ErrUnknownAction   = errors.New("unknown swipe action")
)

// DeckSession is the cached state of one swipe-through.
type DeckSession struct {
	ID            string    `json:"id"`
	RealtorID     string    `json:"realtorId"`
	ContractorIDs []string  `json:"contractorIds"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SwipeResult reports the outcome of a swipe and the next card, if any.
type SwipeResult struct {
	Connection *models.Connection `json:"connection,omitempty"`
	Next       *models.User       `json:"next,omitempty"`
	Remaining  int                `json:"remaining"`
}

// DiscoveryService deals swipeable contractor decks to realtors.
type DiscoveryService interface {
	// StartSession builds a ranked deck for the realtor and caches it.
	StartSession(ctx context.Context, realtorID string, specialties []string) (*DeckSession, []models.User, error)
	// Swipe advances the deck; a like creates a pending connection request.
	Swipe(ctx context.Context, sessionID, action string) (*SwipeResult, error)
}

// DefaultDiscoveryService is the production implementation.
type DefaultDiscoveryService struct {
	Users         userRepo.UserRepository
	Connections   connectionRepo.ConnectionRepository
	ConnectionSvc connection.ConnectionService
	Sessions      DeckStore
}

// StartSession builds a deck of contractors matching the realtor's specialty
// preferences (all contractors when none are given), excluding existing
// connections, ranked and cached under a session id.
func (s *DefaultDiscoveryService) StartSession(ctx context.Context, realtorID string, specialties []string) (*DeckSession, []models.User, error) {
	connectedIDs, err := s.Connections.ConnectedIDs(realtorID)
	if err != nil {
		return nil, nil, err
	}
	exclude := append(connectedIDs, realtorID)

	contractors, err := s.Users.FindContractors(specialties, exclude)
	if err != nil {
		return nil, nil, err
	}
	ranked := rankContractors(contractors, specialties)

	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.ID
	}

	session := &DeckSession{
		ID:            uuid.New().String(),
		RealtorID:     realtorID,
		ContractorIDs: ids,
		Position:      0,
		CreatedAt:     time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, ranked, nil
}

// Swipe advances the deck. A like fires a pending connection request toward
// the current contractor; a pass just moves on.
func (s *DefaultDiscoveryService) Swipe(ctx context.Context, sessionID, action string) (*SwipeResult, error) {
	if action != ActionLike && action != ActionPass {
		return nil, ErrUnknownAction
	}

	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Position >= len(session.ContractorIDs) {
		return nil, ErrDeckExhausted
	}

	currentID := session.ContractorIDs[session.Position]
	result := &SwipeResult{}

	if action == ActionLike {
		conn, err := s.ConnectionSvc.Request(session.RealtorID, currentID, models.WorkHistory{})
		if err != nil && !errors.Is(err, connectionRepo.ErrConnectionExists) {
			return nil, err
		}
		result.Connection = conn
	}

	session.Position++
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	result.Remaining = len(session.ContractorIDs) - session.Position
	if session.Position < len(session.ContractorIDs) {
		next, err := s.Users.GetByID(session.ContractorIDs[session.Position])
		if err == nil {
			result.Next = next
		}
	}
	return result, nil
}
