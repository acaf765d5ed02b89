package messaging

import "time"

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	ReceiverID     string    `json:"receiverId"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

// Conversation is a buyer/seller thread summary for the inbox view.
type Conversation struct {
	ID                string    `json:"id"`
	ParticipantID     string    `json:"participantId"`
	ParticipantName   string    `json:"participantName"`
	ParticipantAvatar string    `json:"participantAvatar"`
	LastMessage       string    `json:"lastMessage"`
	LastMessageTime   time.Time `json:"lastMessageTime"`
	UnreadCount       int       `json:"unreadCount"`
}
