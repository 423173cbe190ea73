package formatter

import (
	"fmt"

	"github.com/alexanderramin/codebot/internal/domain"
)

// FormatConversationTable renders archived conversation headers as a table.
func FormatConversationTable(records []*domain.ConversationRecord) string {
	if len(records) == 0 {
		return Dim("No saved conversations.")
	}

	headers := []string{"ID", "TITLE", "BOT", "SAVED", "TURNS"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			TruncID(r.ID),
			StyleFg.Render(r.Title),
			StylePurple.Render(r.BotName),
			HumanTimestamp(r.SavedAt),
			fmt.Sprintf("%d", r.TurnCount),
		})
	}

	return RenderBox("Conversations", RenderTable(headers, rows))
}

// FormatConversationHeader renders the title line for a single archived
// conversation.
func FormatConversationHeader(r *domain.ConversationRecord) string {
	return Header(r.Title) + "\n" +
		Dim(fmt.Sprintf("%s · %s · %d turns", r.BotName, r.SavedAt.Format("Jan 2, 2006 15:04"), r.TurnCount))
}
