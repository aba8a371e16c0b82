// Package generate drives documentation generation with model fallback.
package generate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/guidegen/internal/gemini"
	"github.com/temirov/guidegen/internal/types"
)

const (
	// PrimaryModelName is tried first when no model is forced.
	PrimaryModelName = "gemini-3-pro-preview"
	// FallbackModelName is tried when the primary model yields nothing.
	FallbackModelName = "gemini-2.0-flash-exp"

	generationTemperature = 0.4

	attemptLogFormat       = "Attempting generation with model: %s..."
	emptyResponseLogFormat = "Model %s returned no text."
	attemptFailedLogFormat = "Model %s failed: %v"

	allModelsFailedMessage = "documentation generation failed with all attempted models"
)

// ContentGenerator produces text for a single generation request.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, request gemini.GenerateRequest) (string, error)
}

// GenerationError reports that every candidate model was exhausted.
type GenerationError struct {
	Attempts []types.GenerationAttempt
	LastErr  error
}

// Error describes the attempted models and the last failure.
func (generationError *GenerationError) Error() string {
	modelNames := make([]string, 0, len(generationError.Attempts))
	for _, attempt := range generationError.Attempts {
		modelNames = append(modelNames, attempt.Model)
	}
	message := allModelsFailedMessage
	if len(modelNames) > 0 {
		message += ": tried " + strings.Join(modelNames, ", ")
	}
	if generationError.LastErr != nil {
		message += ": last error: " + generationError.LastErr.Error()
	}
	return message
}

// Unwrap exposes the last model failure for errors.Is and errors.As.
func (generationError *GenerationError) Unwrap() error {
	return generationError.LastErr
}

// CandidateModels returns the models to try in order. A forced model
// replaces the built-in primary and fallback pair.
func CandidateModels(forcedModel string) []string {
	if forcedModel != "" {
		return []string{forcedModel}
	}
	return []string{PrimaryModelName, FallbackModelName}
}

// Orchestrator runs generation requests against candidate models until one succeeds.
type Orchestrator struct {
	generator ContentGenerator
	logger    *zap.Logger
}

// NewOrchestrator wires a content generator and logger. A nil logger is
// replaced with a no-op logger.
func NewOrchestrator(generator ContentGenerator, applicationLogger *zap.Logger) Orchestrator {
	if applicationLogger == nil {
		applicationLogger = zap.NewNop()
	}
	return Orchestrator{generator: generator, logger: applicationLogger}
}

// GenerateDocumentation submits the codebase context to each candidate model
// in turn and returns the first non-empty response, trimmed, together with
// the model that produced it. A model returning an error or an empty body
// advances the loop; exhausting all candidates yields a GenerationError.
func (orchestrator Orchestrator) GenerateDocumentation(ctx context.Context, codebaseContext string, forcedModel string) (string, string, error) {
	userPrompt := BuildUserPrompt(codebaseContext)
	candidateModels := CandidateModels(forcedModel)
	attempts := make([]types.GenerationAttempt, 0, len(candidateModels))
	var lastError error

	for _, modelName := range candidateModels {
		orchestrator.logger.Info(fmt.Sprintf(attemptLogFormat, modelName))
		generatedText, generationError := orchestrator.generator.GenerateContent(ctx, gemini.GenerateRequest{
			Model:             modelName,
			SystemInstruction: SystemPrompt(),
			UserText:          userPrompt,
			Temperature:       generationTemperature,
		})
		if generationError != nil {
			orchestrator.logger.Warn(fmt.Sprintf(attemptFailedLogFormat, modelName, generationError))
			attempts = append(attempts, types.GenerationAttempt{Model: modelName, Err: generationError})
			lastError = generationError
			continue
		}
		if generatedText == "" {
			orchestrator.logger.Warn(fmt.Sprintf(emptyResponseLogFormat, modelName))
			attempts = append(attempts, types.GenerationAttempt{Model: modelName, Empty: true})
			continue
		}
		return strings.TrimSpace(generatedText), modelName, nil
	}

	return "", "", &GenerationError{Attempts: attempts, LastErr: lastError}
}
