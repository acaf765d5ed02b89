package messaging

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

type Repository interface {
	ListConversations(ctx context.Context, userID string) ([]Conversation, error)
	Messages(ctx context.Context, conversationID string) ([]Message, error)
	Send(ctx context.Context, conversationID, senderID, content string) (Message, error)
	MarkRead(ctx context.Context, conversationID string) error
}

type memoryRepo struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	messages      map[string][]Message
}

func NewMemoryRepository(conversations []Conversation, messages []Message) Repository {
	r := &memoryRepo{
		conversations: make(map[string]*Conversation, len(conversations)),
		messages:      make(map[string][]Message),
	}
	for i := range conversations {
		c := conversations[i]
		r.conversations[c.ID] = &c
	}
	for _, m := range messages {
		r.messages[m.ConversationID] = append(r.messages[m.ConversationID], m)
	}
	return r
}

func (r *memoryRepo) ListConversations(_ context.Context, _ string) ([]Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Conversation, 0, len(r.conversations))
	for _, c := range r.conversations {
		out = append(out, *c)
	}
	// inbox shows the most recently active thread on top
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageTime.After(out[j].LastMessageTime)
	})
	return out, nil
}

func (r *memoryRepo) Messages(_ context.Context, conversationID string) ([]Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return nil, ErrConversationNotFound
	}
	return append([]Message(nil), r.messages[conversationID]...), nil
}

func (r *memoryRepo) Send(_ context.Context, conversationID, senderID, content string) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[conversationID]
	if !ok {
		return Message{}, ErrConversationNotFound
	}

	m := Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     c.ParticipantID,
		Content:        content,
		Timestamp:      time.Now().UTC(),
		Read:           false,
	}
	r.messages[conversationID] = append(r.messages[conversationID], m)

	c.LastMessage = content
	c.LastMessageTime = m.Timestamp
	return m, nil
}

func (r *memoryRepo) MarkRead(_ context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[conversationID]
	if !ok {
		return ErrConversationNotFound
	}
	c.UnreadCount = 0
	msgs := r.messages[conversationID]
	for i := range msgs {
		msgs[i].Read = true
	}
	return nil
}
