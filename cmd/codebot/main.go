package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/codebot/internal/cli"
	"github.com/alexanderramin/codebot/internal/db"
	"github.com/alexanderramin/codebot/internal/generation"
	"github.com/alexanderramin/codebot/internal/repository"
	"github.com/alexanderramin/codebot/internal/service"
	"github.com/alexanderramin/codebot/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.codebot/codebot.db
	dbPath := os.Getenv("CODEBOT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".codebot", "codebot.db")
	}

	botName := os.Getenv("CODEBOT_NAME")
	if botName == "" {
		botName = generation.DefaultBotName
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	convRepo := repository.NewSQLiteConversationRepo(database)
	patternRepo := repository.NewSQLitePatternRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	knowledgeSvc := service.NewKnowledgeService(patternRepo)

	// Optional turn logging to stderr.
	var observer session.TurnObserver = session.NoopTurnObserver{}
	if os.Getenv("CODEBOT_LOG") != "" {
		observer = session.NewLogTurnObserver(os.Stderr)
	}

	// Optional knowledge base import at startup. A broken file should not
	// prevent the chat from starting.
	if kbPath := os.Getenv("CODEBOT_KB"); kbPath != "" {
		n, err := knowledgeSvc.ImportFile(context.Background(), kbPath)
		if err != nil {
			slog.Warn("knowledge base import failed", "path", kbPath, "error", err)
		} else {
			slog.Info("knowledge base imported", "path", kbPath, "entries", n)
		}
	}

	app := &cli.App{
		Sessions:  service.NewSessionFactory(botName, knowledgeSvc, observer),
		Archive:   service.NewArchiveService(convRepo, uow),
		Knowledge: knowledgeSvc,
		BotName:   botName,
	}

	// Detect interactive terminal for the chat TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
