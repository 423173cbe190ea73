package domain

// SentimentScore is a heuristic (positive, negative, neutral) triple derived
// from lexicon membership of input tokens.
//
// When no sentiment-bearing tokens are present the score is the degenerate
// default (0.5, 0.5, 1.0). That triple is intentionally not a probability
// distribution; it marks "no signal" and is preserved for behavioral
// fidelity with the scoring rules. In every other case Positive+Negative
// sum to 1 and Neutral = 1 - max(Positive, Negative).
type SentimentScore struct {
	Positive float64
	Negative float64
	Neutral  float64
}

// NeutralSentiment returns the degenerate no-signal default.
func NeutralSentiment() SentimentScore {
	return SentimentScore{Positive: 0.5, Negative: 0.5, Neutral: 1.0}
}

// Leaning classifies the score as "positive", "negative", or "neutral"
// using the same 0.6 thresholds the response generator branches on.
func (s SentimentScore) Leaning() string {
	switch {
	case s.Positive > 0.6:
		return "positive"
	case s.Negative > 0.6:
		return "negative"
	default:
		return "neutral"
	}
}
