package tokenizer

import (
	"fmt"
	"path/filepath"

	huggingface "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// huggingFaceCounter counts tokens with a tokenizer.json definition loaded
// from disk, covering models without a tiktoken encoding.
type huggingFaceCounter struct {
	backend *huggingface.Tokenizer
	name    string
}

func newHuggingFaceCounter(tokenizerFilePath string) (huggingFaceCounter, error) {
	backend, loadError := pretrained.FromFile(tokenizerFilePath)
	if loadError != nil {
		return huggingFaceCounter{}, wrapInitError(fmt.Sprintf("file %s", tokenizerFilePath), loadError)
	}
	return huggingFaceCounter{
		backend: backend,
		name:    filepath.Base(tokenizerFilePath),
	}, nil
}

func (counter huggingFaceCounter) Name() string {
	return counter.name
}

func (counter huggingFaceCounter) CountString(input string) (int, error) {
	if counter.backend == nil {
		return 0, fmt.Errorf("nil tokenizer backend")
	}
	encoded, encodeError := counter.backend.EncodeSingle(input)
	if encodeError != nil {
		return 0, fmt.Errorf("encoding content: %w", encodeError)
	}
	return len(encoded.Tokens), nil
}
