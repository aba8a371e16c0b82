// Package config resolves ignore rules, credentials, and application settings.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/guidegen/internal/utils"
)

// LoadIgnoreFilePatterns reads the ignore file at ignoreFilePath and returns its patterns.
// Blank lines and comment lines are skipped; every other line is stored verbatim after
// trimming surrounding whitespace. A missing or unreadable file yields no patterns.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) []string {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		return nil
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil
	}
	return ignorePatterns
}

// LoadRootIgnorePatterns reads the Git ignore file at the root of the scanned
// repository and returns its deduplicated patterns. Only the root file is
// consulted; nested ignore files are not merged.
func LoadRootIgnorePatterns(rootDirectory string) []string {
	gitIgnoreFilePath := filepath.Join(rootDirectory, utils.GitIgnoreFileName)
	return utils.DeduplicatePatterns(LoadIgnoreFilePatterns(gitIgnoreFilePath))
}
