package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/codebot/internal/db"
	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/repository"
	"github.com/alexanderramin/codebot/internal/session"
)

type archiveService struct {
	conversations repository.ConversationRepo
	uow           db.UnitOfWork
}

// NewArchiveService creates an ArchiveService over the conversation store.
func NewArchiveService(conversations repository.ConversationRepo, uow db.UnitOfWork) ArchiveService {
	return &archiveService{conversations: conversations, uow: uow}
}

func (s *archiveService) Save(ctx context.Context, title string, sess *session.Session) (*domain.ConversationRecord, error) {
	history := sess.History()
	if len(history) == 0 {
		return nil, fmt.Errorf("nothing to save: conversation is empty")
	}
	if title == "" {
		title = fmt.Sprintf("conversation %s", time.Now().UTC().Format("2006-01-02 15:04"))
	}

	rec := &domain.ConversationRecord{
		ID:        uuid.New().String(),
		Title:     title,
		BotName:   sess.BotName(),
		SavedAt:   time.Now().UTC(),
		TurnCount: len(history),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		conversations := repository.NewSQLiteConversationRepo(tx)
		if err := conversations.Create(ctx, rec); err != nil {
			return err
		}
		if err := conversations.AppendTurns(ctx, rec.ID, history); err != nil {
			return err
		}
		if err := conversations.SaveTopicCounts(ctx, rec.ID, sess.TopicAnalytics()); err != nil {
			return err
		}
		// Learned patterns ride along so future sessions can seed from them.
		patterns := repository.NewSQLitePatternRepo(tx)
		return patterns.Upsert(ctx, sess.Memory().Snapshot())
	})
	if err != nil {
		return nil, fmt.Errorf("archiving conversation: %w", err)
	}
	return rec, nil
}

func (s *archiveService) List(ctx context.Context) ([]*domain.ConversationRecord, error) {
	return s.conversations.List(ctx)
}

func (s *archiveService) Get(ctx context.Context, id string) (*ArchivedConversation, error) {
	rec, err := s.conversations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	turns, err := s.conversations.ListTurns(ctx, id)
	if err != nil {
		return nil, err
	}
	topics, err := s.conversations.TopicCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArchivedConversation{Record: rec, Turns: turns, Topics: topics}, nil
}

func (s *archiveService) Export(ctx context.Context, id string, w io.Writer) error {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return session.WriteLog(w, conv.Record.SavedAt, conv.Turns, conv.Topics)
}

func (s *archiveService) Delete(ctx context.Context, id string) error {
	return s.conversations.Delete(ctx, id)
}
