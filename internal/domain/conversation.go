package domain

import "time"

// ConversationRecord is the header row of an archived conversation.
type ConversationRecord struct {
	ID        string
	Title     string
	BotName   string
	SavedAt   time.Time
	TurnCount int
}
