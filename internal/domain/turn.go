package domain

import "time"

// ConversationTurn is one contribution to a conversation. Immutable once
// created; session history is an append-only sequence of these.
type ConversationTurn struct {
	Speaker   Speaker
	Text      string
	Timestamp time.Time
}
