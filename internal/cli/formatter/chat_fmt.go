package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/session"
)

// FormatChatWelcome renders the banner shown when an interactive chat starts.
func FormatChatWelcome(botName string) string {
	var b strings.Builder
	b.WriteString(Header(botName))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render("Type a message and press Enter. Slash commands:"))
	b.WriteString("\n")
	b.WriteString(Dim("  /save [title]   archive this conversation"))
	b.WriteString("\n")
	b.WriteString(Dim("  /analytics      show topic frequencies"))
	b.WriteString("\n")
	b.WriteString(Dim("  /clear          start over (learned patterns kept)"))
	b.WriteString("\n")
	b.WriteString(Dim("  /quit           leave the chat"))
	return b.String()
}

// FormatTurnLine renders one conversation turn as a prefixed chat line.
func FormatTurnLine(turn domain.ConversationTurn, botName string) string {
	return SpeakerLabel(turn.Speaker, botName) + " " + StyleFg.Render(turn.Text)
}

// FormatTranscript renders a full transcript, one line per turn.
func FormatTranscript(turns []domain.ConversationTurn, botName string) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(FormatTurnLine(turn, botName))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatAnalytics renders sorted topic counts as a boxed table. Topics with
// zero mentions are dimmed.
func FormatAnalytics(counts []session.TopicCount) string {
	if len(counts) == 0 {
		return Dim("No conversation data yet.")
	}

	headers := []string{"TOPIC", "MENTIONS"}
	rows := make([][]string, 0, len(counts))
	for _, tc := range counts {
		label := IntentBadge(tc.Intent)
		count := fmt.Sprintf("%d", tc.Count)
		if tc.Count == 0 {
			label = Dim(string(tc.Intent))
			count = Dim(count)
		}
		rows = append(rows, []string{label, count})
	}

	return RenderBox("Topic Analytics", RenderTable(headers, rows))
}
