package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/codebot/internal/cli/formatter"
	"github.com/alexanderramin/codebot/internal/session"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage archived conversations",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryExportCmd(app),
		newHistoryDeleteCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Archive.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConversationTable(records))
			return nil
		},
	}
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an archived conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := app.Archive.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatConversationHeader(conv.Record))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatTranscript(conv.Turns, conv.Record.BotName))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatAnalytics(session.SortAnalytics(conv.Topics)))
			return nil
		},
	}
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export an archived conversation as a plain-text log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if outPath == "" {
				return app.Archive.Export(ctx, args[0], cmd.OutOrStdout())
			}

			if _, err := os.Stat(outPath); err == nil && app.interactive() {
				overwrite := false
				form := confirmForm(fmt.Sprintf("%s exists. Overwrite?", outPath), &overwrite)
				if err := form.Run(); err != nil {
					return err
				}
				if !overwrite {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := app.Archive.Export(ctx, args[0], f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported conversation to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write to a file instead of stdout")

	return cmd
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an archived conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Archive.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted conversation %s\n", args[0])
			return nil
		},
	}
}
