package messaging

import "time"

// SeedConversations returns the demo inbox. Participant ids match the
// catalog's seller ids.
func SeedConversations(now time.Time) []Conversation {
	return []Conversation{
		{
			ID:                "c1",
			ParticipantID:     "s1",
			ParticipantName:   "TechStore Jakarta",
			ParticipantAvatar: "https://placehold.co/100x100",
			LastMessage:       "Barangnya masih ready kak",
			LastMessageTime:   now.Add(-5 * time.Minute),
			UnreadCount:       1,
		},
		{
			ID:                "c2",
			ParticipantID:     "s2",
			ParticipantName:   "SneakerHub",
			ParticipantAvatar: "https://placehold.co/100x100",
			LastMessage:       "Oke kak, ditunggu ordernya ya!",
			LastMessageTime:   now.Add(-1 * time.Hour),
		},
		{
			ID:                "c3",
			ParticipantID:     "s3",
			ParticipantName:   "LaptopPremium",
			ParticipantAvatar: "https://placehold.co/100x100",
			LastMessage:       "Garansi masih 6 bulan lagi kak",
			LastMessageTime:   now.Add(-3 * time.Hour),
			UnreadCount:       2,
		},
		{
			ID:                "c4",
			ParticipantID:     "s5",
			ParticipantName:   "CameraShop",
			ParticipantAvatar: "https://placehold.co/100x100",
			LastMessage:       "Foto tambahan sudah dikirim ya",
			LastMessageTime:   now.Add(-24 * time.Hour),
		},
	}
}

func SeedMessages(now time.Time) []Message {
	return []Message{
		{
			ID: "m1", ConversationID: "c1", SenderID: "u1", ReceiverID: "s1",
			Content:   "Halo kak, iPhone 12 Pro nya masih ada?",
			Timestamp: now.Add(-10 * time.Minute), Read: true,
		},
		{
			ID: "m2", ConversationID: "c1", SenderID: "s1", ReceiverID: "u1",
			Content:   "Barangnya masih ready kak",
			Timestamp: now.Add(-5 * time.Minute),
		},
		{
			ID: "m3", ConversationID: "c2", SenderID: "u1", ReceiverID: "s2",
			Content:   "Size 42 masih ada kak?",
			Timestamp: now.Add(-2 * time.Hour), Read: true,
		},
		{
			ID: "m4", ConversationID: "c2", SenderID: "s2", ReceiverID: "u1",
			Content:   "Oke kak, ditunggu ordernya ya!",
			Timestamp: now.Add(-1 * time.Hour), Read: true,
		},
	}
}
