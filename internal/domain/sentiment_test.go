package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeutralSentiment(t *testing.T) {
	s := NeutralSentiment()
	assert.Equal(t, 0.5, s.Positive)
	assert.Equal(t, 0.5, s.Negative)
	assert.Equal(t, 1.0, s.Neutral)
}

func TestLeaning(t *testing.T) {
	cases := []struct {
		score SentimentScore
		want  string
	}{
		{SentimentScore{Positive: 1.0, Negative: 0.0, Neutral: 0.0}, "positive"},
		{SentimentScore{Positive: 0.0, Negative: 1.0, Neutral: 0.0}, "negative"},
		{SentimentScore{Positive: 2.0 / 3, Negative: 1.0 / 3, Neutral: 1.0 / 3}, "positive"},
		{NeutralSentiment(), "neutral"},
		{SentimentScore{Positive: 0.5, Negative: 0.5, Neutral: 0.5}, "neutral"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.score.Leaning(), "score=%+v", tc.score)
	}
}

func TestIsValidIntent(t *testing.T) {
	for _, i := range AllIntents {
		assert.True(t, IsValidIntent(string(i)))
	}
	assert.False(t, IsValidIntent("SMALLTALK"))
	assert.False(t, IsValidIntent("greeting"))
}
