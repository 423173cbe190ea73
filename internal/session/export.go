package session

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/alexanderramin/codebot/internal/domain"
)

const exportDateLayout = "2006-01-02 15:04:05"

// Export writes the plain-text conversation log: a dated header, the turn
// transcript, and topic analytics sorted by count descending (name
// ascending on ties). It works from copies of session state, so the session
// remains usable regardless of the writer's outcome.
func (s *Session) Export(w io.Writer) error {
	return WriteLog(w, s.now(), s.History(), s.TopicAnalytics())
}

// ExportToFile writes the conversation log to path, creating or truncating
// the file. A failure leaves session state unaffected.
func (s *Session) ExportToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// SortAnalytics flattens a topic-frequency table into (intent, count) pairs
// ordered by count descending, intent name ascending on ties.
func SortAnalytics(freq map[domain.Intent]int) []TopicCount {
	out := make([]TopicCount, 0, len(freq))
	for intent, count := range freq {
		out = append(out, TopicCount{Intent: intent, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Intent < out[j].Intent
	})
	return out
}

// TopicCount is one row of sorted analytics.
type TopicCount struct {
	Intent domain.Intent
	Count  int
}

// WriteLog emits the export format shared by live sessions and archived
// conversations.
func WriteLog(w io.Writer, exportedAt time.Time, turns []domain.ConversationTurn, freq map[domain.Intent]int) error {
	if _, err := fmt.Fprintf(w, "=== Chatbot Conversation Log ===\nDate: %s\n\n", exportedAt.Format(exportDateLayout)); err != nil {
		return fmt.Errorf("writing log header: %w", err)
	}
	for _, turn := range turns {
		if _, err := fmt.Fprintf(w, "%s: %s\n", turn.Speaker, turn.Text); err != nil {
			return fmt.Errorf("writing turn: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "\n=== Topic Analytics ===\n"); err != nil {
		return fmt.Errorf("writing analytics header: %w", err)
	}
	for _, tc := range SortAnalytics(freq) {
		if _, err := fmt.Fprintf(w, "%s: %d\n", tc.Intent, tc.Count); err != nil {
			return fmt.Errorf("writing analytics row: %w", err)
		}
	}
	return nil
}
