// File: database/repository/message/interface.go
package messageRepo

import "craftlink/models"

// MessageRepository defines data access for direct-message conversations.
type MessageRepository interface {
	// AppendMessage appends a message to the conversation between the pair,
	// creating the conversation on first contact.
	AppendMessage(participantKey string, participants []string, msg models.Message) error
	// GetByKey retrieves a conversation by its participant key, nil if absent.
	GetByKey(participantKey string) (*models.Conversation, error)
	// ListForUser retrieves the user's conversations, most recently
	// active first.
	ListForUser(userID string) ([]models.Conversation, error)
}
