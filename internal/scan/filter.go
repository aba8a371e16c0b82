// Package scan walks a repository tree and collects the text files that survive filtering.
package scan

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/temirov/guidegen/internal/utils"
)

// sensitiveFileNames are always excluded. Ignore rules cannot override them.
var sensitiveFileNames = map[string]struct{}{
	".env":             {},
	".env.local":       {},
	".env.production":  {},
	".env.development": {},
}

// builtinIgnorePatterns are directory names merged into every rule set.
var builtinIgnorePatterns = []string{
	"node_modules",
	utils.GitDirectoryName,
	"__pycache__",
	".venv",
	"venv",
	"dist",
	"build",
}

// textFileExtensions is the lowercase allowlist of file extensions ingested as text.
var textFileExtensions = map[string]struct{}{
	".py": {}, ".js": {}, ".ts": {}, ".jsx": {}, ".tsx": {}, ".go": {}, ".rs": {},
	".java": {}, ".kt": {}, ".scala": {},
	".c": {}, ".cpp": {}, ".h": {}, ".hpp": {}, ".cs": {}, ".swift": {}, ".rb": {},
	".php": {}, ".pl": {}, ".lua": {},
	".sh": {}, ".bash": {}, ".zsh": {}, ".ps1": {}, ".bat": {}, ".cmd": {},
	".html": {}, ".htm": {}, ".css": {}, ".scss": {}, ".sass": {}, ".less": {},
	".json": {}, ".yaml": {}, ".yml": {}, ".toml": {}, ".ini": {}, ".cfg": {}, ".conf": {},
	".xml": {}, ".xsl": {}, ".xslt": {},
	".md": {}, ".markdown": {}, ".rst": {}, ".txt": {}, ".adoc": {},
	".sql": {}, ".graphql": {}, ".gql": {},
	".dockerfile": {}, ".makefile": {}, ".cmake": {},
}

// extensionlessTextFileNames are lowercase file names ingested despite carrying no extension.
var extensionlessTextFileNames = map[string]struct{}{
	"dockerfile": {},
	"makefile":   {},
}

// RuleSet holds the ignore patterns applied during a scan.
type RuleSet struct {
	patterns []string
}

// NewRuleSet merges the provided ignore patterns with the built-in directory
// names and deduplicates the result.
func NewRuleSet(ignorePatterns []string) RuleSet {
	merged := make([]string, 0, len(ignorePatterns)+len(builtinIgnorePatterns))
	merged = append(merged, ignorePatterns...)
	merged = append(merged, builtinIgnorePatterns...)
	return RuleSet{patterns: utils.DeduplicatePatterns(merged)}
}

// ShouldExclude reports whether the entry at relativePath stays out of the scan.
// Rules apply in order: sensitive file names, ignore patterns, and for files the
// text allowlist. relativePath is relative to the scan root and uses forward slashes.
func (rules RuleSet) ShouldExclude(relativePath string, isDirectory bool) bool {
	baseName := path.Base(relativePath)

	if _, isSensitive := sensitiveFileNames[baseName]; isSensitive {
		return true
	}

	for _, pattern := range rules.patterns {
		if matchesIgnorePattern(relativePath, baseName, pattern) {
			return true
		}
	}

	if isDirectory {
		return false
	}
	return !isAllowedTextFile(baseName)
}

// matchesIgnorePattern applies the coarse containment semantics of the rule set:
// the pattern trimmed of surrounding slashes excludes any path containing it as a
// substring and any entry whose name equals it. A pattern written with a trailing
// slash also excludes every path under the named directory. Matching is substring
// containment, not glob evaluation: the pattern "build/" also excludes a path
// such as "build-tools/readme.md".
func matchesIgnorePattern(relativePath, baseName, pattern string) bool {
	trimmedPattern := strings.Trim(pattern, "/")
	if strings.Contains(relativePath, trimmedPattern) || baseName == trimmedPattern {
		return true
	}
	return strings.HasSuffix(pattern, "/") && strings.HasPrefix(relativePath, trimmedPattern+"/")
}

// isAllowedTextFile reports whether the file name carries an allowed text
// extension or is an allowed extensionless name. Matching is case-insensitive.
func isAllowedTextFile(baseName string) bool {
	lowercaseName := strings.ToLower(baseName)
	if _, allowedName := extensionlessTextFileNames[lowercaseName]; allowedName {
		return true
	}
	_, allowedExtension := textFileExtensions[fileSuffix(lowercaseName)]
	return allowedExtension
}

// fileSuffix returns the file extension, treating dotfiles such as ".profile"
// as having no extension at all.
func fileSuffix(name string) string {
	extension := filepath.Ext(name)
	if extension == name {
		return ""
	}
	return extension
}
