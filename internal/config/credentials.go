package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// GeminiAPIKeyVariableName names the environment variable holding the API credential.
	GeminiAPIKeyVariableName = "GEMINI_API_KEY"
	// environmentFileName is the configuration file searched for the credential.
	environmentFileName = ".env"
	// maximumAncestorSearchDepth bounds the upward .env search, counting the start directory.
	maximumAncestorSearchDepth = 6
)

// ErrAPIKeyNotFound indicates that no credential was present in the process
// environment or in any searched .env file.
var ErrAPIKeyNotFound = errors.New("GEMINI_API_KEY is not set; export it or add it to a .env file")

// credentialLinePattern matches a GEMINI_API_KEY assignment with an optionally
// quoted value. The first alternative captures a quoted value, the second an
// unquoted one.
var credentialLinePattern = regexp.MustCompile(
	`^` + GeminiAPIKeyVariableName + `\s*=\s*(?:["'])(.*?)(?:["'])$` +
		`|^` + GeminiAPIKeyVariableName + `\s*=\s*(.*?)$`,
)

// ResolveOptions controls how the API credential is discovered.
type ResolveOptions struct {
	// WorkingDirectory is where the upward .env search starts.
	// Defaults to the process working directory.
	WorkingDirectory string
	// LookupEnvironment overrides environment variable access. Defaults to os.LookupEnv.
	LookupEnvironment func(string) (string, bool)
}

// ResolveAPIKey returns the Gemini API credential from the process environment
// or from the nearest .env file, searching upward through ancestor directories.
// The resolved value is handed to the caller and never written back into the
// process environment. ErrAPIKeyNotFound is returned when no source yields a
// non-empty value.
func ResolveAPIKey(options ResolveOptions) (string, error) {
	lookupEnvironment := options.LookupEnvironment
	if lookupEnvironment == nil {
		lookupEnvironment = os.LookupEnv
	}
	if environmentValue, present := lookupEnvironment(GeminiAPIKeyVariableName); present && environmentValue != "" {
		return environmentValue, nil
	}

	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return "", fmt.Errorf("determine working directory for credential search: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}
	absoluteDirectory, absoluteError := filepath.Abs(workingDirectory)
	if absoluteError != nil {
		return "", fmt.Errorf("resolve credential search directory %s: %w", workingDirectory, absoluteError)
	}

	if fileValue, found := searchEnvironmentFiles(absoluteDirectory); found && fileValue != "" {
		return fileValue, nil
	}
	return "", ErrAPIKeyNotFound
}

// searchEnvironmentFiles walks up from startDirectory looking for a .env file
// that assigns the credential, stopping early at the filesystem root. The first
// matching assignment ends the search even when its value is empty: a nearer
// file shadows a farther one.
func searchEnvironmentFiles(startDirectory string) (string, bool) {
	currentDirectory := startDirectory
	for level := 0; level < maximumAncestorSearchDepth; level++ {
		credentialValue, found := readCredentialFromFile(filepath.Join(currentDirectory, environmentFileName))
		if found {
			return credentialValue, true
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}
	return "", false
}

// readCredentialFromFile parses a single .env file and reports whether a line
// assigned the credential. Blank lines and comments are skipped. A quoted empty
// value abandons the rest of the file so the upward search can continue.
func readCredentialFromFile(environmentFilePath string) (string, bool) {
	content, readError := os.ReadFile(environmentFilePath)
	if readError != nil {
		return "", false
	}
	for _, rawLine := range strings.Split(string(content), "\n") {
		trimmedLine := strings.TrimSpace(rawLine)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		matchIndexes := credentialLinePattern.FindStringSubmatchIndex(trimmedLine)
		if matchIndexes == nil {
			continue
		}
		if matchIndexes[2] >= 0 {
			quotedValue := trimmedLine[matchIndexes[2]:matchIndexes[3]]
			if quotedValue == "" {
				return "", false
			}
			return quotedValue, true
		}
		if matchIndexes[4] >= 0 {
			return trimmedLine[matchIndexes[4]:matchIndexes[5]], true
		}
	}
	return "", false
}
