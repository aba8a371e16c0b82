// Package corpus assembles collected file records into a model-ready context document.
package corpus

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/temirov/guidegen/internal/types"
)

const (
	// fileBlockFormat frames one file with its forward-slash relative path.
	fileBlockFormat = "--- FILE: %s ---\n%s\n"
	// blockSeparator joins adjacent file blocks, leaving one blank line between files.
	blockSeparator = "\n"
)

// BuildContext renders the records into a delimited context document. Records
// appear in input order; content is copied verbatim with no truncation, size
// cap, or deduplication.
func BuildContext(records []types.FileRecord) string {
	fileBlocks := make([]string, 0, len(records))
	for _, record := range records {
		fileBlocks = append(fileBlocks, fmt.Sprintf(fileBlockFormat, record.Path, record.Content))
	}
	return strings.Join(fileBlocks, blockSeparator)
}

// CharacterCount returns the number of Unicode code points in the assembled context.
func CharacterCount(context string) int {
	return utf8.RuneCountInString(context)
}
