package scan_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/guidegen/internal/scan"
)

// pythonFileContent is the text stored in collected fixture files.
const pythonFileContent = "print('hello')\n"

// writeFixtureFile creates a file with the provided content, creating parent directories as needed.
func writeFixtureFile(testingInstance *testing.T, rootDirectory string, relativePath string, content []byte) {
	testingInstance.Helper()
	fullPath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))
	if makeDirError := os.MkdirAll(filepath.Dir(fullPath), 0o755); makeDirError != nil {
		testingInstance.Fatalf("failed to create directories for %s: %v", relativePath, makeDirError)
	}
	if writeError := os.WriteFile(fullPath, content, 0o644); writeError != nil {
		testingInstance.Fatalf("failed to write %s: %v", relativePath, writeError)
	}
}

// collectedPaths extracts the relative paths from a scan in discovery order.
func collectedPaths(testingInstance *testing.T, rootDirectory string, rules scan.RuleSet) []string {
	testingInstance.Helper()
	result, collectError := scan.Collect(rootDirectory, rules)
	if collectError != nil {
		testingInstance.Fatalf("Collect failed: %v", collectError)
	}
	paths := make([]string, 0, result.FileCount())
	for _, record := range result.Files {
		paths = append(paths, record.Path)
	}
	return paths
}

// TestCollectFiltersSensitiveAndDisallowedFiles verifies that only allowed text files survive a scan.
func TestCollectFiltersSensitiveAndDisallowedFiles(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeFixtureFile(testingInstance, rootDirectory, "app.py", []byte(pythonFileContent))
	writeFixtureFile(testingInstance, rootDirectory, "secret.key", []byte("classified"))
	writeFixtureFile(testingInstance, rootDirectory, ".env", []byte("GEMINI_API_KEY=value"))
	writeFixtureFile(testingInstance, rootDirectory, "node_modules/x.js", []byte("module.exports = {}"))

	result, collectError := scan.Collect(rootDirectory, scan.NewRuleSet(nil))
	if collectError != nil {
		testingInstance.Fatalf("Collect failed: %v", collectError)
	}

	if result.FileCount() != 1 {
		testingInstance.Fatalf("expected exactly one record, got %d: %v", result.FileCount(), result.Files)
	}
	if result.Files[0].Path != "app.py" {
		testingInstance.Fatalf("expected app.py, got %s", result.Files[0].Path)
	}
	if result.Files[0].Content != pythonFileContent {
		testingInstance.Fatalf("expected file content %q, got %q", pythonFileContent, result.Files[0].Content)
	}
}

// TestCollectPrunesExcludedDirectories verifies that nothing below an excluded directory is collected.
func TestCollectPrunesExcludedDirectories(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeFixtureFile(testingInstance, rootDirectory, "src/app.py", []byte(pythonFileContent))
	writeFixtureFile(testingInstance, rootDirectory, "vendor/lib.py", []byte(pythonFileContent))
	writeFixtureFile(testingInstance, rootDirectory, "vendor/nested/deep.py", []byte(pythonFileContent))

	paths := collectedPaths(testingInstance, rootDirectory, scan.NewRuleSet([]string{"vendor/"}))

	expectedPaths := []string{"src/app.py"}
	if !reflect.DeepEqual(paths, expectedPaths) {
		testingInstance.Fatalf("unexpected paths: got %v want %v", paths, expectedPaths)
	}
}

// TestCollectSkipsBinaryFiles verifies that files with binary content are skipped silently.
func TestCollectSkipsBinaryFiles(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeFixtureFile(testingInstance, rootDirectory, "app.py", []byte(pythonFileContent))
	writeFixtureFile(testingInstance, rootDirectory, "blob.py", []byte{0xff, 0xfe, 0x00, 0x41})

	paths := collectedPaths(testingInstance, rootDirectory, scan.NewRuleSet(nil))

	expectedPaths := []string{"app.py"}
	if !reflect.DeepEqual(paths, expectedPaths) {
		testingInstance.Fatalf("unexpected paths: got %v want %v", paths, expectedPaths)
	}
}

// TestCollectReturnsForwardSlashRelativePaths verifies path normalization of collected records.
func TestCollectReturnsForwardSlashRelativePaths(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeFixtureFile(testingInstance, rootDirectory, "pkg/util/strings.go", []byte("package util\n"))

	paths := collectedPaths(testingInstance, rootDirectory, scan.NewRuleSet(nil))

	expectedPaths := []string{"pkg/util/strings.go"}
	if !reflect.DeepEqual(paths, expectedPaths) {
		testingInstance.Fatalf("unexpected paths: got %v want %v", paths, expectedPaths)
	}
}

// TestCollectPreservesDiscoveryOrder verifies that records follow the lexical walk order.
func TestCollectPreservesDiscoveryOrder(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeFixtureFile(testingInstance, rootDirectory, "alpha.py", []byte(pythonFileContent))
	writeFixtureFile(testingInstance, rootDirectory, "beta/gamma.py", []byte(pythonFileContent))
	writeFixtureFile(testingInstance, rootDirectory, "delta.py", []byte(pythonFileContent))

	paths := collectedPaths(testingInstance, rootDirectory, scan.NewRuleSet(nil))

	expectedPaths := []string{"alpha.py", "beta/gamma.py", "delta.py"}
	if !reflect.DeepEqual(paths, expectedPaths) {
		testingInstance.Fatalf("unexpected order: got %v want %v", paths, expectedPaths)
	}
}

// TestCollectEmptyTreeYieldsNoRecords verifies that an empty tree produces an empty result without error.
func TestCollectEmptyTreeYieldsNoRecords(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()

	result, collectError := scan.Collect(rootDirectory, scan.NewRuleSet(nil))
	if collectError != nil {
		testingInstance.Fatalf("Collect failed: %v", collectError)
	}
	if result.FileCount() != 0 {
		testingInstance.Fatalf("expected no records, got %d", result.FileCount())
	}
}
