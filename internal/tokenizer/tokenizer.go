// Package tokenizer resolves and wraps the token counting backends used for
// statistics reporting.
package tokenizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	Model            string
	TokenizerFile    string
	WorkingDirectory string
}

const (
	defaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
	estimateModelName   = "estimate"
)

// NewCounter returns a Counter implementation for the requested configuration
// together with the resolved backend name. A tokenizer file takes precedence
// over a model name; unknown models fall back to the default encoding, and
// the word estimator stands in when no encoding can be initialized.
func NewCounter(cfg Config) (Counter, string, error) {
	if tokenizerFilePath := strings.TrimSpace(cfg.TokenizerFile); tokenizerFilePath != "" {
		resolvedPath := resolvePath(cfg.WorkingDirectory, tokenizerFilePath)
		counter, err := newHuggingFaceCounter(resolvedPath)
		if err != nil {
			return nil, "", err
		}
		return counter, counter.Name(), nil
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	lowerModel := strings.ToLower(model)

	if lowerModel == estimateModelName {
		counter := wordEstimateCounter{}
		return counter, counter.Name(), nil
	}

	if isOpenAIModel(lowerModel) {
		encoding, err := tiktoken.EncodingForModel(lowerModel)
		if err == nil && encoding != nil {
			return openAICounter{encoding: encoding, name: lowerModel}, model, nil
		}
	}

	fallback, fallbackErr := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackErr != nil {
		counter := wordEstimateCounter{}
		return counter, counter.Name(), nil
	}
	return openAICounter{encoding: fallback, name: defaultEncodingName}, defaultEncodingName, nil
}

func isOpenAIModel(model string) bool {
	prefixes := []string{
		"gpt-",
		"text-embedding",
		"davinci",
		"curie",
		"babbage",
		"ada",
		"code-",
		"o1",
		"o3",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

func resolvePath(base string, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// wrapInitError keeps backend construction failures uniform across counters.
func wrapInitError(backend string, err error) error {
	return fmt.Errorf("initialize %s tokenizer: %w", backend, err)
}
