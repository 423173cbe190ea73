package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/knowledge"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ConversationRepo persists archived conversations: header, transcript, and
// per-intent topic counts.
type ConversationRepo interface {
	Create(ctx context.Context, rec *domain.ConversationRecord) error
	AppendTurns(ctx context.Context, conversationID string, turns []domain.ConversationTurn) error
	SaveTopicCounts(ctx context.Context, conversationID string, freq map[domain.Intent]int) error
	GetByID(ctx context.Context, id string) (*domain.ConversationRecord, error)
	List(ctx context.Context) ([]*domain.ConversationRecord, error)
	ListTurns(ctx context.Context, conversationID string) ([]domain.ConversationTurn, error)
	TopicCounts(ctx context.Context, conversationID string) (map[domain.Intent]int, error)
	Delete(ctx context.Context, id string) error
}

// PatternRepo persists knowledge-base entries across sessions.
type PatternRepo interface {
	Upsert(ctx context.Context, entries []knowledge.Entry) error
	List(ctx context.Context) ([]knowledge.Entry, error)
	Delete(ctx context.Context, key string) error
}
