package generate

import (
	_ "embed"
	"fmt"
)

// userPromptFormat wraps the assembled codebase context into the request sent to the model.
const userPromptFormat = `Analyze the following codebase and generate the Deployer & Developer Guide.

CODEBASE CONTENTS:
%s

Generate the complete documentation now.`

//go:embed prompts/system_prompt.md
var systemPromptText string

// SystemPrompt returns the instructor persona used for every generation request.
func SystemPrompt() string {
	return systemPromptText
}

// BuildUserPrompt embeds the codebase context into the documentation request.
func BuildUserPrompt(codebaseContext string) string {
	return fmt.Sprintf(userPromptFormat, codebaseContext)
}
