// Package utils contains general helper functions used across the guide generator.
package utils

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Well-known repository file and directory names.
const (
	// GitIgnoreFileName is the name of the Git ignore file read at the scan root.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// ConfigFileName is the name of the local application configuration file.
	ConfigFileName = ".guidegen.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".guidegen"
	// GlobalConfigFileName is the name of the configuration file inside the global directory.
	GlobalConfigFileName = "config.yaml"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativePathOrSelf calculates the forward-slash relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// FormatThousands renders a non-negative integer with comma separators
// between each group of three digits, e.g. 1234567 becomes "1,234,567".
func FormatThousands(value int) string {
	if value < 0 {
		return "0"
	}
	digits := strconv.Itoa(value)
	groupCount := (len(digits) - 1) / 3
	if groupCount == 0 {
		return digits
	}
	var builder strings.Builder
	builder.Grow(len(digits) + groupCount)
	leading := len(digits) - groupCount*3
	builder.WriteString(digits[:leading])
	for groupIndex := 0; groupIndex < groupCount; groupIndex++ {
		builder.WriteByte(',')
		start := leading + groupIndex*3
		builder.WriteString(digits[start : start+3])
	}
	return builder.String()
}
