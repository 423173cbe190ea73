package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SpeakerLabel returns a styled "You:" or "<bot>:" prefix.
func SpeakerLabel(speaker domain.Speaker, botName string) string {
	if speaker == domain.SpeakerUser {
		return StyleBlue.Render("You:")
	}
	return StyleGreen.Render(botName + ":")
}

// IntentBadge returns a colored label for a classified topic.
func IntentBadge(intent domain.Intent) string {
	switch intent {
	case domain.IntentGreeting, domain.IntentFarewell:
		return StyleGreen.Render(string(intent))
	case domain.IntentQuestion, domain.IntentHelp:
		return StyleBlue.Render(string(intent))
	case domain.IntentTechnology, domain.IntentEducation:
		return StylePurple.Render(string(intent))
	case domain.IntentPersonal, domain.IntentWeather, domain.IntentTime:
		return StyleYellow.Render(string(intent))
	case domain.IntentUnknown:
		return StyleDim.Render(string(intent))
	default:
		return StyleFg.Render(string(intent))
	}
}

// SentimentPill returns a colored indicator for the score's leaning.
func SentimentPill(score domain.SentimentScore) string {
	switch score.Leaning() {
	case "positive":
		return StyleGreen.Render("● positive")
	case "negative":
		return StyleRed.Render("● negative")
	default:
		return StyleDim.Render("● neutral")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
