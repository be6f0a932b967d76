package messaging

import (
	"errors"
	"sort"
	"strings"
	"time"

	messageRepo "craftlink/database/repository/message"
	"craftlink/models"

	"github.com/google/uuid"
)

// ErrEmptyMessage rejects blank message bodies at the boundary.
var ErrEmptyMessage = errors.New("message content is empty")

// MessagingService manages direct-message conversations.
type MessagingService interface {
	// Send appends a message from senderID to recipientID, creating the
	// conversation on first contact.
	Send(senderID, recipientID, content string) (*models.Message, error)
	// Conversations lists the user's threads, most recently active first.
	Conversations(userID string) ([]models.Conversation, error)
	// History retrieves the thread between two users, nil if none exists.
	History(userID, otherID string) (*models.Conversation, error)
}

// DefaultMessagingService is the production implementation.
type DefaultMessagingService struct {
	Repo messageRepo.MessageRepository
}

// participantKey builds the direction-independent key for a pair of users.
func participantKey(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join(pair, ":")
}

// Send appends a message to the pair's conversation.
func (s *DefaultMessagingService) Send(senderID, recipientID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	msg := models.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now(),
	}
	key := participantKey(senderID, recipientID)
	if err := s.Repo.AppendMessage(key, []string{senderID, recipientID}, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Conversations lists the user's threads.
func (s *DefaultMessagingService) Conversations(userID string) ([]models.Conversation, error) {
	return s.Repo.ListForUser(userID)
}

// History retrieves the thread between two users.
func (s *DefaultMessagingService) History(userID, otherID string) (*models.Conversation, error) {
	return s.Repo.GetByKey(participantKey(userID, otherID))
}
