package nlp

import "strings"

// stopWords is the fixed set of common English function words discarded
// during tokenization.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"has": true, "he": true, "in": true, "is": true, "it": true,
	"its": true, "of": true, "on": true, "that": true, "the": true,
	"to": true, "was": true, "will": true, "with": true, "would": true,
	"could": true, "should": true, "can": true,
}

// Tokenize splits normalized text on whitespace and drops stop words.
// Order is preserved and duplicates are retained.
func Tokenize(normalized string) []string {
	var tokens []string
	for _, w := range strings.Fields(normalized) {
		if !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// ExtractKeywords is Tokenize with the additional requirement that a token
// be longer than three characters.
func ExtractKeywords(normalized string) []string {
	var keywords []string
	for _, tok := range Tokenize(normalized) {
		if len(tok) > 3 {
			keywords = append(keywords, tok)
		}
	}
	return keywords
}
