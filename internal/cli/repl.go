package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/codebot/internal/cli/formatter"
	"github.com/alexanderramin/codebot/internal/session"
)

// runPlainChat is the line-based fallback loop used when stdin is not a
// terminal (pipes, scripts, dumb terminals). It understands the same slash
// commands as the TUI.
func runPlainChat(app *App, sess *session.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, formatter.FormatChatWelcome(sess.BotName()))

	scanner := bufio.NewScanner(in)
	ctx := context.Background()

	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			done, err := plainSlashCommand(ctx, app, sess, input, out, scanner)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
			if done {
				return scanner.Err()
			}
			continue
		}

		reply := sess.ProcessTurn(ctx, input)
		fmt.Fprintf(out, "%s: %s\n", sess.BotName(), reply)
	}

	// EOF: offer to archive anything worth keeping.
	if sess.Processed() > 0 {
		fmt.Fprint(out, "Save this conversation? [y/N] ")
		if scanner.Scan() && isYes(scanner.Text()) {
			if err := plainSave(ctx, app, sess, "", out); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// plainSlashCommand handles one slash command. The bool result reports
// whether the loop should terminate.
func plainSlashCommand(ctx context.Context, app *App, sess *session.Session, input string, out io.Writer, scanner *bufio.Scanner) (bool, error) {
	cmd, rest, _ := strings.Cut(input, " ")
	switch strings.ToLower(cmd) {
	case "/quit", "/exit", "/q":
		if sess.Processed() > 0 {
			fmt.Fprint(out, "Save this conversation? [y/N] ")
			if scanner.Scan() && isYes(scanner.Text()) {
				if err := plainSave(ctx, app, sess, "", out); err != nil {
					return true, err
				}
			}
		}
		return true, nil

	case "/save":
		return false, plainSave(ctx, app, sess, strings.TrimSpace(rest), out)

	case "/analytics":
		counts := session.SortAnalytics(sess.TopicAnalytics())
		fmt.Fprintln(out, formatter.FormatAnalytics(counts))
		return false, nil

	case "/clear":
		sess.Clear()
		fmt.Fprintln(out, "Conversation cleared.")
		return false, nil

	default:
		fmt.Fprintf(out, "Unknown command %s\n", cmd)
		return false, nil
	}
}

func plainSave(ctx context.Context, app *App, sess *session.Session, title string, out io.Writer) error {
	rec, err := app.Archive.Save(ctx, title, sess)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved conversation %q (%s).\n", rec.Title, rec.ID[:8])
	return nil
}

func isYes(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "y" || s == "yes"
}
