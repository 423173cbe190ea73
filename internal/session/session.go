// Package session owns the per-conversation state and drives the response
// pipeline: normalize, classify intent, score sentiment, generate response,
// update session state.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/generation"
	"github.com/alexanderramin/codebot/internal/knowledge"
	"github.com/alexanderramin/codebot/internal/nlp"
)

// ClarificationPrompt is returned for empty or blank input. Session state
// stays untouched in that case.
const ClarificationPrompt = "I didn't catch that. Could you please say something?"

// Config carries the collaborators and knobs for a new Session. Zero-value
// fields fall back to sensible defaults.
type Config struct {
	BotName  string
	Memory   *knowledge.PatternMemory // defaults to the embedded knowledge base
	Rand     generation.Rand          // defaults to a time-seeded source
	Now      func() time.Time         // defaults to time.Now
	Observer TurnObserver             // defaults to NoopTurnObserver
}

// Session is one conversation: history, topic-frequency table, pattern
// memory, and the generator's turn-to-turn context. It exclusively owns
// that state; none of it outlives the session.
//
// Not safe for concurrent use. One ProcessTurn call must complete before
// session state is read or mutated again; callers needing concurrency
// serialize externally.
type Session struct {
	classifier *nlp.Classifier
	generator  *generation.Generator
	memory     *knowledge.PatternMemory
	genCtx     *generation.Context
	observer   TurnObserver
	now        func() time.Time

	history   []domain.ConversationTurn
	topicFreq map[domain.Intent]int
	processed int
}

// New creates a Session with every intent's frequency initialized to zero.
func New(cfg Config) *Session {
	if cfg.Memory == nil {
		cfg.Memory = knowledge.NewWithDefaults()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Observer == nil {
		cfg.Observer = NoopTurnObserver{}
	}

	freq := make(map[domain.Intent]int, len(domain.AllIntents))
	for _, intent := range domain.AllIntents {
		freq[intent] = 0
	}

	return &Session{
		classifier: nlp.NewClassifier(),
		generator:  generation.NewGenerator(cfg.BotName, cfg.Rand, cfg.Now),
		memory:     cfg.Memory,
		genCtx:     generation.NewContext(),
		observer:   cfg.Observer,
		now:        cfg.Now,
		topicFreq:  freq,
	}
}

// ProcessTurn runs one full pipeline pass for the raw input and returns the
// reply. Blank input returns the clarification prompt without touching any
// state. Otherwise exactly two turns (USER, BOT) are appended to history
// and exactly one topic counter is incremented.
func (s *Session) ProcessTurn(ctx context.Context, rawInput string) string {
	if strings.TrimSpace(rawInput) == "" {
		return ClarificationPrompt
	}

	started := s.now()
	s.history = append(s.history, domain.ConversationTurn{
		Speaker:   domain.SpeakerUser,
		Text:      rawInput,
		Timestamp: started,
	})

	normalized := nlp.Normalize(rawInput)
	intent := s.classifier.Classify(normalized)
	s.topicFreq[intent]++

	sentiment := nlp.Score(nlp.Tokenize(normalized))
	reply := s.generator.Generate(intent, normalized, sentiment, s.genCtx)

	s.memory.Record(normalized, reply)
	s.history = append(s.history, domain.ConversationTurn{
		Speaker:   domain.SpeakerBot,
		Text:      reply,
		Timestamp: s.now(),
	})
	s.processed++

	s.observer.ObserveTurn(ctx, TurnEvent{
		TurnNumber: s.processed,
		Intent:     intent,
		Sentiment:  sentiment.Leaning(),
		Duration:   s.now().Sub(started),
	})
	return reply
}

// History returns a copy of the turn sequence.
func (s *Session) History() []domain.ConversationTurn {
	out := make([]domain.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

// TopicAnalytics returns a copy of the topic-frequency table.
func (s *Session) TopicAnalytics() map[domain.Intent]int {
	out := make(map[domain.Intent]int, len(s.topicFreq))
	for intent, count := range s.topicFreq {
		out[intent] = count
	}
	return out
}

// Processed returns the number of processed (non-blank) turns.
func (s *Session) Processed() int {
	return s.processed
}

// BotName returns the configured bot name.
func (s *Session) BotName() string {
	return s.generator.BotName()
}

// Memory exposes the session's pattern memory for persistence and
// inspection.
func (s *Session) Memory() *knowledge.PatternMemory {
	return s.memory
}

// Clear resets history, topic counters, generation context, and the
// processed-turn count, starting a fresh conversation in place. Pattern
// memory is kept: learned patterns survive a cleared transcript.
func (s *Session) Clear() {
	s.history = nil
	s.processed = 0
	s.genCtx = generation.NewContext()
	for _, intent := range domain.AllIntents {
		s.topicFreq[intent] = 0
	}
}
