package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Session TTL mirrors how long a user plausibly keeps a deck open.
const sessionTTL = 30 * time.Minute

// DeckStore persists deck sessions for their lifetime.
type DeckStore interface {
	// Save stores the session, refreshing its TTL.
	Save(ctx context.Context, session *DeckSession) error
	// Load retrieves a session, ErrSessionNotFound when absent or expired.
	Load(ctx context.Context, sessionID string) (*DeckSession, error)
}

// RedisDeckStore keeps deck sessions in Redis so they expire on their own.
type RedisDeckStore struct {
	client *redis.Client
}

// NewRedisDeckStore builds a deck store on the given client.
func NewRedisDeckStore(client *redis.Client) DeckStore {
	return &RedisDeckStore{client: client}
}

func sessionKey(id string) string {
	return "discovery:session:" + id
}

// Save stores the session, refreshing its TTL.
func (s *RedisDeckStore) Save(ctx context.Context, session *DeckSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal discovery session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache discovery session: %w", err)
	}
	return nil
}

// Load retrieves a session by id.
func (s *RedisDeckStore) Load(ctx context.Context, sessionID string) (*DeckSession, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session DeckSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to parse discovery session: %w", err)
	}
	return &session, nil
}
