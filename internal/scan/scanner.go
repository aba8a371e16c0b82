package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/guidegen/internal/types"
	"github.com/temirov/guidegen/internal/utils"
)

// ErrNoFilesCollected indicates that filtering left no files to analyze.
var ErrNoFilesCollected = errors.New("no files found to analyze")

// Collect walks rootPath top-down and gathers every text file that survives the
// rule set. Excluded directories are pruned before descent, so nothing below
// them is ever visited. Files that cannot be read are skipped with a warning;
// files with binary content are skipped silently. Records appear in discovery
// order with forward-slash paths relative to the root.
func Collect(rootPath string, rules RuleSet) (types.ScanResult, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return types.ScanResult{}, fmt.Errorf("failed to get absolute path for %s: %w", rootPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootPath)

	result := types.ScanResult{Root: cleanedRootPath}

	directoryWalkError := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry os.DirEntry, accessError error) error {
		if accessError != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", walkedPath, accessError)
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath := utils.RelativePathOrSelf(walkedPath, cleanedRootPath)
		if relativePath == "." {
			return nil
		}
		if rules.ShouldExclude(relativePath, directoryEntry.IsDir()) {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}

		fileBytes, fileReadError := os.ReadFile(walkedPath)
		if fileReadError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read file %s: %v\n", walkedPath, fileReadError)
			return nil
		}
		if utils.IsBinary(fileBytes) {
			return nil
		}

		result.Files = append(result.Files, types.FileRecord{
			Path:    relativePath,
			Content: string(fileBytes),
		})
		return nil
	})
	if directoryWalkError != nil {
		return types.ScanResult{}, directoryWalkError
	}

	return result, nil
}
