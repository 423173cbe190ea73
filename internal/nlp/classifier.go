package nlp

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/codebot/internal/domain"
)

// intentRule pairs an intent with the patterns that select it.
type intentRule struct {
	intent   domain.Intent
	patterns []*regexp.Regexp
}

// Classifier matches normalized text against an explicitly ordered rule
// table. Ordering is a first-class decision: an input can satisfy rules for
// several intents and the first matching rule wins, so specific lexical
// cues (greetings, farewells, help/time/domain words) are placed ahead of
// the broad interrogative-word rule. The same intent may appear twice in
// the table: explicit question requests ("can you ...", "tell me about")
// rank early, while bare interrogative words rank last so that
// "what time is it" resolves to TIME rather than QUESTION.
type Classifier struct {
	rules []intentRule
}

// NewClassifier builds the classifier with its fixed rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: []intentRule{
		{domain.IntentGreeting, compileAll(
			`\b(hello|hi|hey|good morning|good afternoon|good evening|greetings)\b`,
			`\bhow are you\b`,
			`\bwhats up\b`,
			`\bnice to meet\b`,
		)},
		{domain.IntentFarewell, compileAll(
			`\b(bye|goodbye|see you|farewell|take care|later)\b`,
			`\bgood night\b`,
			`\btalk to you later\b`,
			`\bhave a good\b`,
		)},
		{domain.IntentQuestion, compileAll(
			`\b(can you|could you|would you)\b`,
			`\b(do you know|tell me about|explain)\b`,
		)},
		{domain.IntentHelp, compileAll(
			`\b(help|assist|support|guide)\b`,
			`\bi need help\b`,
			`\bcan you help\b`,
			`\bwhat can you do\b`,
		)},
		{domain.IntentTime, compileAll(
			`\b(time|clock|hour|minute|date|today|now)\b`,
			`\bwhat time\b`,
			`\bcurrent time\b`,
		)},
		{domain.IntentTechnology, compileAll(
			`\b(computer|software|program|code|java|python|ai|robot)\b`,
			`\b(technology|tech|internet|web|app)\b`,
			`\b(algorithm|machine learning|artificial intelligence)\b`,
		)},
		{domain.IntentEducation, compileAll(
			`\b(school|study|learn|education|teacher|student)\b`,
			`\b(university|college|course|lesson|homework)\b`,
			`\b(book|read|knowledge|subject)\b`,
		)},
		{domain.IntentPersonal, compileAll(
			`\b(i am|im|i feel|i think|i like|i love|i hate)\b`,
			`\bmy name is\b`,
			`\bi have\b`,
			`\btell me about yourself\b`,
		)},
		{domain.IntentQuestion, compileAll(
			`\b(what|who|when|where|why|how|which)\b`,
			`\bis it\b`, `\bare you\b`,
		)},
	}}
}

// Classify returns the first intent whose rule set matches the normalized
// text. Fallbacks when no rule matches: a literal '?' yields QUESTION, more
// than ten words yields PERSONAL, anything else UNKNOWN. Deterministic for
// a given input.
func (c *Classifier) Classify(normalized string) domain.Intent {
	for _, rule := range c.rules {
		for _, p := range rule.patterns {
			if p.MatchString(normalized) {
				return rule.intent
			}
		}
	}

	if strings.Contains(normalized, "?") {
		return domain.IntentQuestion
	}
	if len(strings.Fields(normalized)) > 10 {
		return domain.IntentPersonal
	}
	return domain.IntentUnknown
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		patterns[i] = regexp.MustCompile(e)
	}
	return patterns
}
