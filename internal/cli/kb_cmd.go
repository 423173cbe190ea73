package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/codebot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newKBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Manage the knowledge base",
	}

	cmd.AddCommand(
		newKBListCmd(app),
		newKBAddCmd(app),
		newKBRemoveCmd(app),
		newKBImportCmd(app),
	)

	return cmd
}

func newKBListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored knowledge entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Knowledge.Entries(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No custom knowledge entries. The built-in defaults still apply.")
				return nil
			}

			headers := []string{"KEY", "RESPONSE"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				preview := e.Response
				if len(preview) > 60 {
					preview = preview[:57] + "..."
				}
				rows = append(rows, []string{formatter.Bold(e.Key), preview})
			}

			fmt.Fprintln(out, formatter.RenderBox("Knowledge Base", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newKBAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add KEY RESPONSE",
		Short: "Add or replace a knowledge entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Knowledge.Add(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added knowledge entry %q\n", args[0])
			return nil
		},
	}
}

func newKBRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove KEY",
		Short: "Remove a knowledge entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Knowledge.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed knowledge entry %q\n", args[0])
			return nil
		},
	}
}

func newKBImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import key|response lines from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Knowledge.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", n, args[0])
			return nil
		},
	}
}
