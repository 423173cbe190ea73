package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask MESSAGE...",
		Short: "Get a one-shot answer without starting a chat",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := app.Sessions.NewSession(ctx)
			if err != nil {
				return fmt.Errorf("starting session: %w", err)
			}

			reply := sess.ProcessTurn(ctx, strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}
