package session

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/codebot/internal/domain"
)

// TurnEvent captures lightweight execution telemetry for one processed turn.
type TurnEvent struct {
	TurnNumber int
	Intent     domain.Intent
	Sentiment  string
	Duration   time.Duration
}

// TurnObserver receives turn-processing events.
type TurnObserver interface {
	ObserveTurn(ctx context.Context, event TurnEvent)
}

// NoopTurnObserver ignores all events.
type NoopTurnObserver struct{}

func (NoopTurnObserver) ObserveTurn(context.Context, TurnEvent) {}

type logTurnObserver struct {
	logger *slog.Logger
}

// NewLogTurnObserver writes turn events to the provided writer.
func NewLogTurnObserver(w io.Writer) TurnObserver {
	if w == nil {
		return NoopTurnObserver{}
	}
	return &logTurnObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logTurnObserver) ObserveTurn(ctx context.Context, event TurnEvent) {
	o.logger.InfoContext(ctx, "session_turn",
		"turn", event.TurnNumber,
		"intent", string(event.Intent),
		"sentiment", event.Sentiment,
		"duration_ms", event.Duration.Milliseconds(),
	)
}
