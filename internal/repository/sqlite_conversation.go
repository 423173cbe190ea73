package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/codebot/internal/db"
	"github.com/alexanderramin/codebot/internal/domain"
)

// SQLiteConversationRepo implements ConversationRepo using a SQLite database.
type SQLiteConversationRepo struct {
	db db.DBTX
}

// NewSQLiteConversationRepo creates a new SQLiteConversationRepo.
func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

func (r *SQLiteConversationRepo) Create(ctx context.Context, rec *domain.ConversationRecord) error {
	query := `INSERT INTO conversations (id, title, bot_name, saved_at, turn_count)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Title,
		rec.BotName,
		rec.SavedAt.Format(time.RFC3339),
		rec.TurnCount,
	)
	if err != nil {
		return fmt.Errorf("inserting conversation: %w", err)
	}
	return nil
}

func (r *SQLiteConversationRepo) AppendTurns(ctx context.Context, conversationID string, turns []domain.ConversationTurn) error {
	query := `INSERT INTO conversation_turns (id, conversation_id, seq, speaker, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for seq, turn := range turns {
		_, err := r.db.ExecContext(ctx, query,
			uuid.New().String(),
			conversationID,
			seq,
			string(turn.Speaker),
			turn.Text,
			turn.Timestamp.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting conversation turn %d: %w", seq, err)
		}
	}
	return nil
}

func (r *SQLiteConversationRepo) SaveTopicCounts(ctx context.Context, conversationID string, freq map[domain.Intent]int) error {
	query := `INSERT INTO topic_counts (conversation_id, intent, count) VALUES (?, ?, ?)
		ON CONFLICT(conversation_id, intent) DO UPDATE SET count = excluded.count`
	for intent, count := range freq {
		if _, err := r.db.ExecContext(ctx, query, conversationID, string(intent), count); err != nil {
			return fmt.Errorf("inserting topic count for %s: %w", intent, err)
		}
	}
	return nil
}

func (r *SQLiteConversationRepo) GetByID(ctx context.Context, id string) (*domain.ConversationRecord, error) {
	query := `SELECT id, title, bot_name, saved_at, turn_count FROM conversations WHERE id = ?`
	return r.scanConversation(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteConversationRepo) List(ctx context.Context) ([]*domain.ConversationRecord, error) {
	query := `SELECT id, title, bot_name, saved_at, turn_count FROM conversations ORDER BY saved_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	defer rows.Close()

	var records []*domain.ConversationRecord
	for rows.Next() {
		var rec domain.ConversationRecord
		var savedAtStr string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.BotName, &savedAtStr, &rec.TurnCount); err != nil {
			return nil, fmt.Errorf("scanning conversation: %w", err)
		}
		rec.SavedAt, err = time.Parse(time.RFC3339, savedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing saved_at: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *SQLiteConversationRepo) ListTurns(ctx context.Context, conversationID string) ([]domain.ConversationTurn, error) {
	query := `SELECT speaker, text, created_at FROM conversation_turns
		WHERE conversation_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing conversation turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.ConversationTurn
	for rows.Next() {
		var turn domain.ConversationTurn
		var speaker, createdAtStr string
		if err := rows.Scan(&speaker, &turn.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning conversation turn: %w", err)
		}
		turn.Speaker = domain.Speaker(speaker)
		turn.Timestamp, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing turn timestamp: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

func (r *SQLiteConversationRepo) TopicCounts(ctx context.Context, conversationID string) (map[domain.Intent]int, error) {
	query := `SELECT intent, count FROM topic_counts WHERE conversation_id = ?`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing topic counts: %w", err)
	}
	defer rows.Close()

	freq := make(map[domain.Intent]int)
	for rows.Next() {
		var intent string
		var count int
		if err := rows.Scan(&intent, &count); err != nil {
			return nil, fmt.Errorf("scanning topic count: %w", err)
		}
		freq[domain.Intent(intent)] = count
	}
	return freq, rows.Err()
}

func (r *SQLiteConversationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanConversation scans a single record from a *sql.Row.
func (r *SQLiteConversationRepo) scanConversation(row *sql.Row) (*domain.ConversationRecord, error) {
	var rec domain.ConversationRecord
	var savedAtStr string
	err := row.Scan(&rec.ID, &rec.Title, &rec.BotName, &savedAtStr, &rec.TurnCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("conversation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}
	rec.SavedAt, err = time.Parse(time.RFC3339, savedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing saved_at: %w", err)
	}
	return &rec, nil
}
