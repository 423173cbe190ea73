package generation

import (
	"fmt"
	"strings"
)

// jokes is the fixed joke list served for "joke"/"funny" requests.
var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Why did the programmer quit his job? He didn't get arrays!",
	"How do you comfort a JavaScript bug? You console it!",
	"Why do Java developers wear glasses? Because they don't see sharp!",
	"What's a computer's favorite snack? Chips!",
	"Why was the computer cold? It left its Windows open!",
	"What do you call a programmer from Finland? Nerdic!",
	"Why don't programmers like nature? It has too many bugs!",
}

// Jokes returns a copy of the fixed joke list.
func Jokes() []string {
	out := make([]string, len(jokes))
	copy(out, jokes)
	return out
}

// specificResponse checks the input against the specific-pattern overrides
// that pre-empt every other response path, regardless of classified intent.
// Returns ok=false when no override applies.
func (g *Generator) specificResponse(input string) (string, bool) {
	if resp, ok := g.nameResponse(input); ok {
		return resp, true
	}
	if strings.Contains(input, "joke") || strings.Contains(input, "funny") {
		return jokes[g.rng.Intn(len(jokes))], true
	}
	if strings.Contains(input, "who are you") || strings.Contains(input, "what are you") {
		return fmt.Sprintf("I'm %s, a rule-based chatbot. I match your messages against "+
			"intent patterns and a sentiment lexicon to figure out how to respond!", g.botName), true
	}
	if strings.Contains(input, "who created") || strings.Contains(input, "who made") {
		return "I was built as a compact chatbot engine project. No neural networks in here, " +
			"just patterns, templates, and a frequency table that counts what we talk about!", true
	}
	if strings.Contains(input, "what can you do") || strings.Contains(input, "your capabilities") {
		return "I can chat with you, answer questions, tell jokes, provide information about " +
			"various topics, analyze the sentiment of our conversation, and learn patterns from " +
			"our interactions. Try asking me about technology, education, or just have a casual " +
			"conversation!", true
	}
	return "", false
}

// nameResponse handles self-introductions: "my name is X", "i am X", and
// "im X" (the normalizer strips the apostrophe from "i'm"). The token after
// the cue is taken as the name; a cue with no following token falls back to
// a generic greeting.
func (g *Generator) nameResponse(input string) (string, bool) {
	words := strings.Fields(input)
	cueAt := -1 // index of the token following the cue
	for i, w := range words {
		switch {
		case w == "my" && i+2 < len(words) && words[i+1] == "name" && words[i+2] == "is":
			cueAt = i + 3
		case w == "i" && i+1 < len(words) && words[i+1] == "am":
			cueAt = i + 2
		case w == "im":
			cueAt = i + 1
		default:
			continue
		}
		break
	}
	if cueAt < 0 {
		return "", false
	}
	if cueAt >= len(words) {
		return fmt.Sprintf("Nice to meet you! I'm %s, your AI assistant.", g.botName), true
	}
	name := capitalize(strings.Trim(words[cueAt], "?!."))
	if name == "" {
		return fmt.Sprintf("Nice to meet you! I'm %s, your AI assistant.", g.botName), true
	}
	return fmt.Sprintf("Nice to meet you, %s! I'm %s, your AI assistant.", name, g.botName), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
