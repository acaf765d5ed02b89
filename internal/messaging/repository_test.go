package messaging

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seededRepo() Repository {
	now := time.Now().UTC()
	return NewMemoryRepository(SeedConversations(now), SeedMessages(now))
}

func TestListConversationsNewestFirst(t *testing.T) {
	repo := seededRepo()

	got, err := repo.ListConversations(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 conversations, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].LastMessageTime.After(got[i-1].LastMessageTime) {
			t.Fatalf("conversations not newest-first: %v before %v", got[i-1].ID, got[i].ID)
		}
	}
	if got[0].ID != "c1" {
		t.Fatalf("expected most recent thread first, got %s", got[0].ID)
	}
}

func TestMessages(t *testing.T) {
	repo := seededRepo()

	msgs, err := repo.Messages(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}

	_, err = repo.Messages(context.Background(), "nope")
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestSendUpdatesConversation(t *testing.T) {
	repo := seededRepo()
	ctx := context.Background()

	m, err := repo.Send(ctx, "c2", "u1", "Siap, saya order sekarang")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || m.ReceiverID != "s2" {
		t.Fatalf("unexpected message %+v", m)
	}

	msgs, err := repo.Messages(ctx, "c2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msgs[len(msgs)-1].Content != "Siap, saya order sekarang" {
		t.Fatalf("message not appended: %+v", msgs)
	}

	convs, _ := repo.ListConversations(ctx, "u1")
	if convs[0].ID != "c2" {
		t.Fatalf("expected c2 bumped to top, got %s", convs[0].ID)
	}
	if convs[0].LastMessage != "Siap, saya order sekarang" {
		t.Fatalf("conversation summary not updated: %+v", convs[0])
	}
}

func TestSendUnknownConversation(t *testing.T) {
	repo := seededRepo()
	if _, err := repo.Send(context.Background(), "nope", "u1", "halo"); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestMarkRead(t *testing.T) {
	repo := seededRepo()
	ctx := context.Background()

	if err := repo.MarkRead(ctx, "c3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	convs, _ := repo.ListConversations(ctx, "u1")
	for _, c := range convs {
		if c.ID == "c3" && c.UnreadCount != 0 {
			t.Fatalf("expected unread count cleared, got %d", c.UnreadCount)
		}
	}
}
