package evaluator

import (
	"regexp"
	"strings"
)

// termSplit matches runs of characters that cannot appear in a term.
// '+' is kept so queries like "c++" or "55+" survive tokenization.
var termSplit = regexp.MustCompile(`[^a-z0-9+]+`)

// ExtractKeywords lowercases the text and splits it into search terms.
// Order is preserved and duplicates are kept: each occurrence is scored
// independently, so repeating a term amplifies resources that match it.
func ExtractKeywords(text string) []string {
	parts := termSplit.Split(strings.ToLower(text), -1)

	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			terms = append(terms, p)
		}
	}

	return terms
}
