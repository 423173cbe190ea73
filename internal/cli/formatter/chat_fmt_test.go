package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/session"
)

func TestFormatChatWelcome(t *testing.T) {
	out := FormatChatWelcome("CodeBot")
	assert.Contains(t, out, "CODEBOT")
	assert.Contains(t, out, "/save")
	assert.Contains(t, out, "/analytics")
	assert.Contains(t, out, "/quit")
}

func TestFormatTurnLine(t *testing.T) {
	user := domain.ConversationTurn{Speaker: domain.SpeakerUser, Text: "hello"}
	bot := domain.ConversationTurn{Speaker: domain.SpeakerBot, Text: "Hi there!"}

	assert.Contains(t, FormatTurnLine(user, "CodeBot"), "You:")
	assert.Contains(t, FormatTurnLine(user, "CodeBot"), "hello")
	assert.Contains(t, FormatTurnLine(bot, "CodeBot"), "CodeBot:")
	assert.Contains(t, FormatTurnLine(bot, "CodeBot"), "Hi there!")
}

func TestFormatTranscript(t *testing.T) {
	now := time.Now()
	turns := []domain.ConversationTurn{
		{Speaker: domain.SpeakerUser, Text: "hi", Timestamp: now},
		{Speaker: domain.SpeakerBot, Text: "Hello!", Timestamp: now},
	}
	out := FormatTranscript(turns, "Bot")
	assert.Contains(t, out, "hi")
	assert.Contains(t, out, "Hello!")
	assert.Equal(t, 2, len(splitNonEmptyLines(out)))
}

func TestFormatAnalytics(t *testing.T) {
	counts := []session.TopicCount{
		{Intent: domain.IntentGreeting, Count: 3},
		{Intent: domain.IntentQuestion, Count: 1},
		{Intent: domain.IntentUnknown, Count: 0},
	}
	out := FormatAnalytics(counts)
	assert.Contains(t, out, "TOPIC ANALYTICS")
	assert.Contains(t, out, "GREETING")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "UNKNOWN")
}

func TestFormatAnalyticsEmpty(t *testing.T) {
	out := FormatAnalytics(nil)
	assert.Contains(t, out, "No conversation data yet.")
}

func TestIntentBadgeCoversAllIntents(t *testing.T) {
	for _, intent := range domain.AllIntents {
		assert.Contains(t, IntentBadge(intent), string(intent))
	}
}

func TestSentimentPill(t *testing.T) {
	positive := domain.SentimentScore{Positive: 0.8, Negative: 0.2, Neutral: 0.2}
	negative := domain.SentimentScore{Positive: 0.2, Negative: 0.8, Neutral: 0.2}
	neutral := domain.NeutralSentiment()

	assert.Contains(t, SentimentPill(positive), "positive")
	assert.Contains(t, SentimentPill(negative), "negative")
	assert.Contains(t, SentimentPill(neutral), "neutral")
}

func splitNonEmptyLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
