// Package model defines the core domain models used throughout the application.
package model

import "time"

// Exchange is one query and the assistant's answer, as kept in chat history.
type Exchange struct {
	CreatedAt      time.Time
	ID             string
	ConversationID string
	Query          string
	Response       AssistantResponse
}

// Conversation summarizes a run of exchanges sharing a conversation ID.
type Conversation struct {
	StartedAt     time.Time
	LastMessageAt time.Time
	ID            string
	FirstQuery    string
	ExchangeCount int
}
