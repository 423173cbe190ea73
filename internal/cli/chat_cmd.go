package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := app.Sessions.NewSession(ctx)
			if err != nil {
				return fmt.Errorf("starting session: %w", err)
			}

			if !app.interactive() {
				return runPlainChat(app, sess, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			program := tea.NewProgram(newChatModel(app, sess))
			_, err = program.Run()
			return err
		},
	}
}
