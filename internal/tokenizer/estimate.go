package tokenizer

import "strings"

// wordEstimateCounter approximates token counts from word counts. It backs
// the "estimate" model and stands in when no real encoding is available, for
// example in offline environments where encoding data cannot be fetched.
type wordEstimateCounter struct{}

func (wordEstimateCounter) Name() string {
	return estimateModelName
}

func (wordEstimateCounter) CountString(input string) (int, error) {
	if input == "" {
		return 0, nil
	}
	words := len(strings.Fields(input))
	// Roughly 1.33 tokens per word for English text.
	tokens := int(float64(words) * 1.33)
	if tokens < 1 {
		tokens = 1
	}
	return tokens, nil
}
