package cli

import (
	"github.com/alexanderramin/codebot/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions  service.SessionFactory
	Archive   service.ArchiveService
	Knowledge service.KnowledgeService

	// BotName labels bot turns in output.
	BotName string

	// IsInteractive reports whether stdin is a terminal. The chat command
	// falls back to a plain line-based loop when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "codebot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "codebot",
		Short: "Rule-based conversational assistant",
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newHistoryCmd(app),
		newKBCmd(app),
	)

	return root
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
