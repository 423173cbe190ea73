package generation

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/codebot/internal/domain"
)

const timeLayout = "15:04:05"

// DefaultBotName is used when the caller does not configure a name.
const DefaultBotName = "CodeBot"

// Context is the turn-to-turn state the generator reads and mutates: the
// previous turn's intent and a running turn counter. Owned by the session,
// one per conversation.
type Context struct {
	LastIntent domain.Intent
	Turn       int
}

// NewContext returns a fresh context for the start of a conversation.
func NewContext() *Context {
	return &Context{LastIntent: domain.IntentUnknown}
}

// Generator composes replies from specific-pattern overrides, per-intent
// dynamic branches, and the template table, then applies sentiment tone and
// continuation phrasing. All random draws go through a single Rand and all
// timestamps through a single clock so tests can pin outputs exactly.
type Generator struct {
	botName string
	rng     Rand
	now     func() time.Time
}

// NewGenerator creates a Generator. A nil rng falls back to a time-seeded
// source and a nil now falls back to time.Now.
func NewGenerator(botName string, rng Rand, now func() time.Time) *Generator {
	if botName == "" {
		botName = DefaultBotName
	}
	if rng == nil {
		rng = newDefaultRand()
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{botName: botName, rng: rng, now: now}
}

// BotName returns the configured bot name.
func (g *Generator) BotName() string {
	return g.botName
}

// Generate produces the reply for one turn. Resolution order: specific
// overrides, then the intent's dynamic branch, then a random template with
// placeholder substitution; tone and continuation modifiers apply to the
// non-override paths. Side effects: increments ctx.Turn and records the
// intent as ctx.LastIntent. Always returns non-empty text.
func (g *Generator) Generate(intent domain.Intent, input string, sentiment domain.SentimentScore, ctx *Context) string {
	ctx.Turn++

	if resp, ok := g.specificResponse(input); ok {
		ctx.LastIntent = intent
		return resp
	}

	resp := g.contextualResponse(intent, input, sentiment, ctx.Turn)
	resp = g.applyTone(resp, sentiment)
	resp = g.applyContinuation(resp, intent, ctx.LastIntent)

	ctx.LastIntent = intent
	return resp
}

func (g *Generator) contextualResponse(intent domain.Intent, input string, sentiment domain.SentimentScore, turn int) string {
	switch intent {
	case domain.IntentTime:
		return g.timeResponse()
	case domain.IntentTechnology:
		return g.techResponse(input)
	case domain.IntentEducation:
		return g.educationResponse(input)
	case domain.IntentPersonal:
		return g.personalResponse(sentiment)
	case domain.IntentQuestion:
		return g.questionResponse(input)
	}

	templates := templatesFor(intent)
	return g.substitute(templates[g.rng.Intn(len(templates))], turn)
}

// substitute replaces {name}, {time}, and {turn} placeholders.
func (g *Generator) substitute(template string, turn int) string {
	r := strings.NewReplacer(
		"{name}", g.botName,
		"{time}", g.currentTime(),
		"{turn}", strconv.Itoa(turn),
	)
	return r.Replace(template)
}

var enthusiasticMarkers = []string{
	" \U0001F60A",
	" That's great!",
	" I love your enthusiasm!",
	" Awesome!",
}

var empatheticMarkers = []string{
	" I understand.",
	" I'm here if you need to talk.",
	" Things will get better.",
	" Take care.",
}

// applyTone appends an enthusiastic marker for strongly positive input and
// an empathetic marker for strongly negative input.
func (g *Generator) applyTone(resp string, sentiment domain.SentimentScore) string {
	switch {
	case sentiment.Positive > 0.7:
		return resp + enthusiasticMarkers[g.rng.Intn(len(enthusiasticMarkers))]
	case sentiment.Negative > 0.7:
		return resp + empatheticMarkers[g.rng.Intn(len(empatheticMarkers))]
	}
	return resp
}

var continuationConnectors = []string{"Also, ", "Additionally, ", "By the way, ", "Furthermore, "}

// continuationProbability is the chance a repeated intent gets a
// continuity connector prepended.
const continuationProbability = 0.3

// applyContinuation acknowledges a repeated intent by occasionally
// prepending a connector and lower-casing the body that follows it.
func (g *Generator) applyContinuation(resp string, intent, lastIntent domain.Intent) string {
	if intent != lastIntent || intent == domain.IntentUnknown {
		return resp
	}
	if g.rng.Float64() >= continuationProbability {
		return resp
	}
	connector := continuationConnectors[g.rng.Intn(len(continuationConnectors))]
	return connector + strings.ToLower(resp)
}

func (g *Generator) currentTime() string {
	return g.now().Format(timeLayout)
}
