package generation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/codebot/internal/domain"
)

var testNow = func() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

// stubRand replays scripted values. Intn values are clamped to the
// requested bound; exhausted scripts return 0 (and 1.0 for Float64, which
// never triggers the continuation branch).
type stubRand struct {
	ints   []int
	floats []float64
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1.0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func newTestGenerator(rng Rand) *Generator {
	return NewGenerator("CodeBot", rng, testNow)
}

func neutral() domain.SentimentScore {
	return domain.NeutralSentiment()
}

func TestGenerate_NameIntroduction(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	cases := []string{
		"my name is alex",
		"i am alex",
		"im alex",
	}
	for _, input := range cases {
		resp := g.Generate(domain.IntentPersonal, input, neutral(), NewContext())
		assert.Contains(t, resp, "Alex", "input=%q", input)
		assert.Contains(t, resp, "CodeBot", "input=%q", input)
	}
}

func TestGenerate_NameIntroductionStripsPunctuation(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	resp := g.Generate(domain.IntentPersonal, "my name is alex.", neutral(), NewContext())
	assert.Contains(t, resp, "Nice to meet you, Alex!")
}

func TestGenerate_NameCueWithoutName(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	resp := g.Generate(domain.IntentPersonal, "my name is", neutral(), NewContext())
	assert.Contains(t, resp, "Nice to meet you!")
	assert.Contains(t, resp, "CodeBot")
}

func TestGenerate_JokeFromFixedSet(t *testing.T) {
	g := newTestGenerator(&stubRand{ints: []int{3}})
	resp := g.Generate(domain.IntentUnknown, "tell me a joke", neutral(), NewContext())
	assert.Equal(t, jokes[3], resp)
}

// Uniform-random coverage: many draws must reach every joke and never
// leave the fixed set.
func TestGenerate_JokeCoverage(t *testing.T) {
	g := NewGenerator("CodeBot", nil, testNow)
	seen := make(map[string]bool)
	ctx := NewContext()
	for i := 0; i < 1000; i++ {
		resp := g.Generate(domain.IntentUnknown, "something funny", neutral(), ctx)
		found := false
		for _, j := range jokes {
			if resp == j {
				found = true
				break
			}
		}
		require.True(t, found, "response outside the fixed joke set: %q", resp)
		seen[resp] = true
	}
	assert.Len(t, seen, len(jokes), "expected all jokes over 1000 draws")
}

func TestGenerate_IdentityCreatorCapabilities(t *testing.T) {
	g := newTestGenerator(&stubRand{})

	resp := g.Generate(domain.IntentQuestion, "who are you", neutral(), NewContext())
	assert.Contains(t, resp, "CodeBot")

	resp = g.Generate(domain.IntentQuestion, "who created you", neutral(), NewContext())
	assert.Contains(t, resp, "chatbot engine")

	resp = g.Generate(domain.IntentQuestion, "what can you do for me", neutral(), NewContext())
	assert.Contains(t, resp, "tell jokes")
}

func TestGenerate_TemplateSubstitution(t *testing.T) {
	// GREETING template index 2 is "Greetings! I'm {name}, your AI assistant."
	g := newTestGenerator(&stubRand{ints: []int{2}})
	resp := g.Generate(domain.IntentGreeting, "hello", neutral(), NewContext())
	assert.Equal(t, "Greetings! I'm CodeBot, your AI assistant.", resp)
	assert.NotContains(t, resp, "{")
}

func TestSubstitute_TimeAndTurn(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	got := g.substitute("{name} at {time}, turn {turn}", 7)
	assert.Equal(t, "CodeBot at 10:00:00, turn 7", got)
}

func TestGenerate_TimeIntent(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	resp := g.Generate(domain.IntentTime, "what time is it", neutral(), NewContext())
	assert.Contains(t, resp, "The current time is 10:00:00")
}

func TestGenerate_TechnologyKeywordChain(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	cases := []struct {
		input string
		want  string
	}{
		{"i love java", "Java is a fantastic programming language!"},
		{"explain artificial intelligence", "Artificial Intelligence is fascinating!"},
		{"i enjoy programming", "Programming is an amazing skill!"},
		{"the internet is vast", "Technology is constantly evolving!"},
	}
	for _, tc := range cases {
		resp := g.Generate(domain.IntentTechnology, tc.input, neutral(), NewContext())
		assert.Contains(t, resp, tc.want, "input=%q", tc.input)
	}
}

func TestGenerate_EducationKeywordChain(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	cases := []struct {
		input string
		want  string
	}{
		{"i study math", "Learning is a lifelong journey!"},
		{"university life", "Education opens doors to new opportunities!"},
		{"teacher stuff", "Education is the foundation of personal growth."},
	}
	for _, tc := range cases {
		resp := g.Generate(domain.IntentEducation, tc.input, neutral(), NewContext())
		assert.Contains(t, resp, tc.want, "input=%q", tc.input)
	}
}

func TestGenerate_PersonalSentimentBranches(t *testing.T) {
	g := newTestGenerator(&stubRand{})

	positive := domain.SentimentScore{Positive: 1.0, Negative: 0.0, Neutral: 0.0}
	resp := g.Generate(domain.IntentPersonal, "i feel things", positive, NewContext())
	assert.Contains(t, resp, "That's wonderful to hear!")

	negative := domain.SentimentScore{Positive: 0.0, Negative: 1.0, Neutral: 0.0}
	resp = g.Generate(domain.IntentPersonal, "i feel things", negative, NewContext())
	assert.Contains(t, resp, "I'm sorry to hear")

	resp = g.Generate(domain.IntentPersonal, "i feel things", neutral(), NewContext())
	assert.Contains(t, resp, "I appreciate you sharing")
}

func TestGenerate_QuestionKeywordChain(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	cases := []struct {
		input string
		want  string
	}{
		{"what time suits", "The current time is 10:00:00."},
		{"how are you feeling", "I'm doing well, thank you for asking!"},
		{"why is that", "That's a thoughtful question!"},
		{"how does this work", "Great question!"},
		{"which one", "That's an interesting question!"},
	}
	for _, tc := range cases {
		resp := g.Generate(domain.IntentQuestion, tc.input, neutral(), NewContext())
		assert.Contains(t, resp, tc.want, "input=%q", tc.input)
	}
}

func TestGenerate_EnthusiasticTone(t *testing.T) {
	// Template pick 0, then marker pick 1: " That's great!".
	g := newTestGenerator(&stubRand{ints: []int{0, 1}})
	positive := domain.SentimentScore{Positive: 1.0, Negative: 0.0, Neutral: 0.0}
	resp := g.Generate(domain.IntentGreeting, "hello love it", positive, NewContext())
	assert.True(t, strings.HasSuffix(resp, " That's great!"), "resp=%q", resp)
}

func TestGenerate_EmpatheticTone(t *testing.T) {
	g := newTestGenerator(&stubRand{ints: []int{0, 3}})
	negative := domain.SentimentScore{Positive: 0.0, Negative: 1.0, Neutral: 0.0}
	resp := g.Generate(domain.IntentGreeting, "hello terrible day", negative, NewContext())
	assert.True(t, strings.HasSuffix(resp, " Take care."), "resp=%q", resp)
}

func TestGenerate_NoToneForNeutral(t *testing.T) {
	g := newTestGenerator(&stubRand{ints: []int{0}})
	resp := g.Generate(domain.IntentGreeting, "hello", neutral(), NewContext())
	assert.Equal(t, "Hello! How can I help you today?", resp)
}

func TestGenerate_ContinuationOnRepeatedIntent(t *testing.T) {
	// Template pick 0; Float64 0.0 < 0.3 triggers continuation; connector pick 0.
	g := newTestGenerator(&stubRand{ints: []int{0, 0}, floats: []float64{0.0}})
	ctx := &Context{LastIntent: domain.IntentGreeting, Turn: 1}
	resp := g.Generate(domain.IntentGreeting, "hello", neutral(), ctx)
	assert.Equal(t, "Also, hello! how can i help you today?", resp)
}

func TestGenerate_NoContinuationWhenCoinFailsOrIntentChanges(t *testing.T) {
	g := newTestGenerator(&stubRand{ints: []int{0}, floats: []float64{0.9}})
	ctx := &Context{LastIntent: domain.IntentGreeting, Turn: 1}
	resp := g.Generate(domain.IntentGreeting, "hello", neutral(), ctx)
	assert.Equal(t, "Hello! How can I help you today?", resp)

	// Repeated UNKNOWN never gets a connector.
	g = newTestGenerator(&stubRand{ints: []int{0}, floats: []float64{0.0}})
	ctx = &Context{LastIntent: domain.IntentUnknown, Turn: 1}
	resp = g.Generate(domain.IntentUnknown, "zzz", neutral(), ctx)
	assert.Equal(t, "I'm not quite sure I understand. Could you rephrase that?", resp)
}

func TestGenerate_ContextSideEffects(t *testing.T) {
	g := newTestGenerator(&stubRand{})
	ctx := NewContext()

	g.Generate(domain.IntentGreeting, "hello", neutral(), ctx)
	assert.Equal(t, 1, ctx.Turn)
	assert.Equal(t, domain.IntentGreeting, ctx.LastIntent)

	// Override path updates context too.
	g.Generate(domain.IntentUnknown, "tell me a joke", neutral(), ctx)
	assert.Equal(t, 2, ctx.Turn)
	assert.Equal(t, domain.IntentUnknown, ctx.LastIntent)
}

func TestGenerate_AlwaysNonEmpty(t *testing.T) {
	g := NewGenerator("CodeBot", nil, nil)
	ctx := NewContext()
	inputs := []string{"", "hello", "xyz", "what", "i am", "joke"}
	for _, in := range inputs {
		for _, intent := range domain.AllIntents {
			resp := g.Generate(intent, in, neutral(), ctx)
			assert.NotEmpty(t, resp, "intent=%s input=%q", intent, in)
		}
	}
}

func TestTemplatesFor_FallsBackToUnknown(t *testing.T) {
	assert.Equal(t, responseTemplates[domain.IntentUnknown], templatesFor(domain.Intent("BOGUS")))
}
