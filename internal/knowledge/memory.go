// Package knowledge holds the pattern memory: a key to response table
// seeded from a knowledge base and appended to as interactions occur.
package knowledge

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Entry is one key/response pair.
type Entry struct {
	Key      string
	Response string
}

// PatternMemory maps normalized keys (three-token input prefixes or loaded
// knowledge-base keys) to response strings. Population happens at startup
// from a knowledge base and per turn via Record. The generation pipeline
// does not consult it unless lookup is explicitly enabled: by default it is
// write-only interaction telemetry.
//
// Not safe for concurrent use; the owning session serializes access.
type PatternMemory struct {
	entries  map[string]string
	lookupOn bool
}

// New returns an empty PatternMemory.
func New() *PatternMemory {
	return &PatternMemory{entries: make(map[string]string)}
}

// NewWithDefaults returns a PatternMemory seeded from the embedded default
// knowledge base.
func NewWithDefaults() *PatternMemory {
	m := New()
	// The embedded table always parses.
	_ = m.Load(strings.NewReader(defaultKnowledgeBase))
	return m
}

// Load reads `key|response` lines from r. The first '|' splits key from
// response; both sides are trimmed and the key lower-cased. Lines without a
// '|', or with an empty key or response, are skipped. Later entries
// overwrite earlier ones for the same key.
func (m *PatternMemory) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, response, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		m.entries[key] = response
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading knowledge base: %w", err)
	}
	return nil
}

func parseLine(line string) (key, response string, ok bool) {
	before, after, found := strings.Cut(line, "|")
	if !found {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(before))
	response = strings.TrimSpace(after)
	if key == "" || response == "" {
		return "", "", false
	}
	return key, response, true
}

// Put stores a single entry, applying the same trimming and lower-casing
// as Load. Empty keys or responses are ignored.
func (m *PatternMemory) Put(key, response string) {
	key = strings.ToLower(strings.TrimSpace(key))
	response = strings.TrimSpace(response)
	if key == "" || response == "" {
		return
	}
	m.entries[key] = response
}

// Record stores a response under the three-token prefix of the normalized
// input. Inputs of two or fewer tokens are ignored. Last write wins.
func (m *PatternMemory) Record(normalizedInput, response string) {
	words := strings.Fields(normalizedInput)
	if len(words) <= 2 {
		return
	}
	key := strings.Join(words[:3], " ")
	m.entries[key] = response
}

// EnableLookup turns on response lookup. Off by default: the reproduced
// pipeline populates pattern memory without reading it back, and lookup
// stays a separately toggleable capability.
func (m *PatternMemory) EnableLookup(on bool) {
	m.lookupOn = on
}

// Lookup returns the stored response for the three-token prefix of the
// normalized input (or the whole input when shorter). Always misses while
// lookup is disabled.
func (m *PatternMemory) Lookup(normalizedInput string) (string, bool) {
	if !m.lookupOn {
		return "", false
	}
	words := strings.Fields(normalizedInput)
	if len(words) > 3 {
		words = words[:3]
	}
	resp, ok := m.entries[strings.Join(words, " ")]
	return resp, ok
}

// Len returns the number of stored entries.
func (m *PatternMemory) Len() int {
	return len(m.entries)
}

// Snapshot returns the entries sorted by key, for export and persistence.
func (m *PatternMemory) Snapshot() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Key: k, Response: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// defaultKnowledgeBase is the embedded fallback used when no external
// knowledge base is available.
const defaultKnowledgeBase = `hello|Hello! How can I help you today?
hi|Hi there! What's on your mind?
good morning|Good morning! Hope you're having a great day!
how are you|I'm doing well, thank you for asking! How about you?
what is your name|I'm a rule-based chatbot. You can call me CodeBot!
what can you do|I can chat with you, answer questions, and learn from our conversations!
thank you|You're very welcome! Happy to help!
bye|Goodbye! It was nice chatting with you!
help|I'm here to chat and answer your questions. Try asking me about technology, general topics, or just have a conversation!
what time is it|Let me check the current time for you.
tell me a joke|Why don't scientists trust atoms? Because they make up everything!
who created you|I was built as a compact rule-based chatbot engine project.`
