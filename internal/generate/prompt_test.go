package generate_test

import (
	"strings"
	"testing"

	"github.com/temirov/guidegen/internal/generate"
)

// TestSystemPromptCarriesInstructorPersona verifies that the embedded instruction is present and structured.
func TestSystemPromptCarriesInstructorPersona(testingInstance *testing.T) {
	systemPrompt := generate.SystemPrompt()
	if systemPrompt == "" {
		testingInstance.Fatalf("expected a non-empty system prompt")
	}
	requiredFragments := []string{
		"Senior Developer Instructor",
		"Deployer & Developer Guide",
		"Executive Summary",
		"System Architecture",
		"Developer Onboarding",
		"Operational Guide",
	}
	for _, fragment := range requiredFragments {
		if !strings.Contains(systemPrompt, fragment) {
			testingInstance.Errorf("expected system prompt to contain %q", fragment)
		}
	}
}

// TestBuildUserPromptWrapsContext verifies that the codebase context is framed by the fixed request text.
func TestBuildUserPromptWrapsContext(testingInstance *testing.T) {
	contextDocument := "--- FILE: main.go ---\npackage main\n"

	userPrompt := generate.BuildUserPrompt(contextDocument)

	if !strings.Contains(userPrompt, contextDocument) {
		testingInstance.Fatalf("expected context document inside the user prompt")
	}
	if !strings.Contains(userPrompt, "CODEBASE CONTENTS:") {
		testingInstance.Fatalf("expected the codebase header in the user prompt")
	}
	if !strings.HasPrefix(userPrompt, "Analyze the following codebase") {
		testingInstance.Fatalf("unexpected prompt opening: %q", userPrompt[:40])
	}
}
