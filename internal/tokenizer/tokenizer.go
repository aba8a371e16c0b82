// Package tokenizer estimates token counts for assembled context documents.
package tokenizer

import (
	"fmt"
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
	// Model is the generation model the estimate is for. Models without a
	// published tiktoken table fall back to the default encoding.
	Model string
}

const defaultEncodingName = "cl100k_base"

// NewCounter returns a Counter for the requested model together with the name
// of the tokenizer actually selected. Gemini models carry no tiktoken table,
// so they resolve to the default encoding; the count is an estimate, not the
// backend's own accounting.
func NewCounter(cfg Config) (Counter, string, error) {
	modelName := strings.ToLower(strings.TrimSpace(cfg.Model))
	if modelName != "" {
		encoding, encodingError := tiktoken.EncodingForModel(modelName)
		if encodingError == nil && encoding != nil {
			return encodingCounter{encoding: encoding, name: modelName}, modelName, nil
		}
	}
	fallback, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return encodingCounter{encoding: fallback, name: defaultEncodingName}, defaultEncodingName, nil
}
