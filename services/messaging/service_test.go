package messaging

import (
	"testing"

	"craftlink/models"
)

type memMessageRepo struct {
	conversations map[string]*models.Conversation
}

func (r *memMessageRepo) AppendMessage(key string, participants []string, msg models.Message) error {
	if r.conversations == nil {
		r.conversations = make(map[string]*models.Conversation)
	}
	convo, ok := r.conversations[key]
	if !ok {
		convo = &models.Conversation{ParticipantKey: key, Participants: participants}
		r.conversations[key] = convo
	}
	convo.Messages = append(convo.Messages, msg)
	return nil
}

func (r *memMessageRepo) GetByKey(key string) (*models.Conversation, error) {
	return r.conversations[key], nil
}

func (r *memMessageRepo) ListForUser(userID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, convo := range r.conversations {
		for _, p := range convo.Participants {
			if p == userID {
				out = append(out, *convo)
				break
			}
		}
	}
	return out, nil
}

func TestParticipantKey_DirectionIndependent(t *testing.T) {
	if participantKey("alice", "bob") != participantKey("bob", "alice") {
		t.Fatalf("expected the same key regardless of direction")
	}
	if participantKey("alice", "bob") != "alice:bob" {
		t.Fatalf("expected sorted key, got %q", participantKey("alice", "bob"))
	}
}

func TestSend_SharedThreadBothDirections(t *testing.T) {
	svc := &DefaultMessagingService{Repo: &memMessageRepo{}}

	if _, err := svc.Send("alice", "bob", "hi"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := svc.Send("bob", "alice", "hello"); err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	convo, err := svc.History("alice", "bob")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if convo == nil || len(convo.Messages) != 2 {
		t.Fatalf("expected one thread with both messages, got %+v", convo)
	}
}

func TestSend_RejectsEmptyContent(t *testing.T) {
	svc := &DefaultMessagingService{Repo: &memMessageRepo{}}

	if _, err := svc.Send("alice", "bob", "   "); err != ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}
