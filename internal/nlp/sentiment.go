package nlp

import "github.com/alexanderramin/codebot/internal/domain"

// Positive and negative sentiment lexicons. Disjoint, fixed at startup.
var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome", "perfect",
	"happy", "glad", "pleased", "satisfied", "love", "like", "enjoy", "appreciate",
	"beautiful", "nice", "cool", "fun", "exciting", "interesting", "helpful", "useful",
	"thank", "thanks", "brilliant", "outstanding", "superb", "marvelous", "delighted",
	"positive", "optimistic", "confident", "successful", "win", "victory", "achieve",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "disgusting", "hate", "dislike", "annoying",
	"sad", "angry", "mad", "upset", "disappointed", "frustrated", "worried", "concerned",
	"problem", "issue", "trouble", "difficult", "hard", "impossible", "wrong", "error",
	"fail", "failure", "lose", "lost", "broken", "damaged", "hurt", "pain", "suffer",
	"negative", "pessimistic", "depressed", "anxious", "fear", "scared", "boring", "dull",
)

func wordSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

// Score counts tokens against the sentiment lexicons. With zero hits it
// returns the degenerate no-signal default; otherwise positive and negative
// are normalized over the hit total and neutral is 1 - max(pos, neg).
// Pure: identical tokens always yield an identical score.
func Score(tokens []string) domain.SentimentScore {
	var pos, neg int
	for _, tok := range tokens {
		switch {
		case positiveWords[tok]:
			pos++
		case negativeWords[tok]:
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return domain.NeutralSentiment()
	}

	p := float64(pos) / float64(total)
	n := float64(neg) / float64(total)
	return domain.SentimentScore{
		Positive: p,
		Negative: n,
		Neutral:  1.0 - max(p, n),
	}
}
