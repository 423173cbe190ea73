package service

import (
	"context"
	"io"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/knowledge"
	"github.com/alexanderramin/codebot/internal/session"
)

// SessionFactory builds fresh conversation sessions seeded from the
// persisted knowledge base.
type SessionFactory interface {
	NewSession(ctx context.Context) (*session.Session, error)
}

// ArchiveService persists finished conversations and re-emits them.
type ArchiveService interface {
	// Save archives the session's transcript, topic analytics, and learned
	// patterns in one transaction, under the given title.
	Save(ctx context.Context, title string, sess *session.Session) (*domain.ConversationRecord, error)
	List(ctx context.Context) ([]*domain.ConversationRecord, error)
	Get(ctx context.Context, id string) (*ArchivedConversation, error)
	// Export writes an archived conversation in the plain-text log format.
	Export(ctx context.Context, id string, w io.Writer) error
	Delete(ctx context.Context, id string) error
}

// ArchivedConversation bundles a stored conversation with its transcript
// and topic counts.
type ArchivedConversation struct {
	Record *domain.ConversationRecord
	Turns  []domain.ConversationTurn
	Topics map[domain.Intent]int
}

// KnowledgeService manages the persisted knowledge base.
type KnowledgeService interface {
	Entries(ctx context.Context) ([]knowledge.Entry, error)
	Add(ctx context.Context, key, response string) error
	Remove(ctx context.Context, key string) error
	// ImportFile loads `key|response` lines from a file into the store,
	// returning the number of entries imported.
	ImportFile(ctx context.Context, path string) (int, error)
	// Seed builds a PatternMemory from the embedded defaults overlaid with
	// the persisted entries.
	Seed(ctx context.Context) (*knowledge.PatternMemory, error)
}
