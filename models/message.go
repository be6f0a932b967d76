package models

import "time"

// Conversation is a direct-message thread between two users. ParticipantKey
// is the sorted "idA:idB" pair so a thread is found regardless of direction.
type Conversation struct {
	ID             string    `bson:"id" json:"id"`
	ParticipantKey string    `bson:"participantKey" json:"-"`
	Participants   []string  `bson:"participants" json:"participants"`
	Messages       []Message `bson:"messages" json:"messages"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Message is a single direct message inside a conversation.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	SenderID  string    `bson:"senderId" json:"senderId"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
