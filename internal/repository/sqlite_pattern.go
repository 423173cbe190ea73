package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/codebot/internal/db"
	"github.com/alexanderramin/codebot/internal/knowledge"
)

// SQLitePatternRepo implements PatternRepo using a SQLite database.
type SQLitePatternRepo struct {
	db db.DBTX
}

// NewSQLitePatternRepo creates a new SQLitePatternRepo.
func NewSQLitePatternRepo(conn db.DBTX) *SQLitePatternRepo {
	return &SQLitePatternRepo{db: conn}
}

func (r *SQLitePatternRepo) Upsert(ctx context.Context, entries []knowledge.Entry) error {
	query := `INSERT INTO knowledge_entries (key, response, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET response = excluded.response, updated_at = excluded.updated_at`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entries {
		if _, err := r.db.ExecContext(ctx, query, e.Key, e.Response, now); err != nil {
			return fmt.Errorf("upserting knowledge entry %q: %w", e.Key, err)
		}
	}
	return nil
}

func (r *SQLitePatternRepo) List(ctx context.Context) ([]knowledge.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, response FROM knowledge_entries ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge entries: %w", err)
	}
	defer rows.Close()

	var entries []knowledge.Entry
	for rows.Next() {
		var e knowledge.Entry
		if err := rows.Scan(&e.Key, &e.Response); err != nil {
			return nil, fmt.Errorf("scanning knowledge entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLitePatternRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM knowledge_entries WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting knowledge entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("knowledge entry %q: %w", key, ErrNotFound)
	}
	return nil
}
