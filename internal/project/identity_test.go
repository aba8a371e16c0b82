package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/guidegen/internal/project"
)

// writeManifest places a manifest file at the root of the fixture project.
func writeManifest(testingInstance *testing.T, rootDirectory string, fileName string, content string) {
	testingInstance.Helper()
	if writeError := os.WriteFile(filepath.Join(rootDirectory, fileName), []byte(content), 0o644); writeError != nil {
		testingInstance.Fatalf("failed to write %s: %v", fileName, writeError)
	}
}

// TestDetectNameFromGoModule verifies that the go.mod module path supplies the name.
func TestDetectNameFromGoModule(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeManifest(testingInstance, rootDirectory, "go.mod", "module github.com/example/shipyard\n\ngo 1.24\n")

	if projectName := project.DetectName(rootDirectory); projectName != "shipyard" {
		testingInstance.Fatalf("expected shipyard, got %q", projectName)
	}
}

// TestDetectNameFromPackageJSON verifies that the package.json name field supplies the name.
func TestDetectNameFromPackageJSON(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeManifest(testingInstance, rootDirectory, "package.json", `{"name": "harborview", "version": "1.0.0"}`)

	if projectName := project.DetectName(rootDirectory); projectName != "harborview" {
		testingInstance.Fatalf("expected harborview, got %q", projectName)
	}
}

// TestDetectNameFromPyProject verifies that the [project] table in pyproject.toml supplies the name.
func TestDetectNameFromPyProject(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	pyProjectContent := "[build-system]\nrequires = [\"setuptools\"]\n\n[tool.poetry]\nname = \"wrong-table\"\n\n[project]\nname = \"lighthouse\"\nversion = \"0.1.0\"\n"
	writeManifest(testingInstance, rootDirectory, "pyproject.toml", pyProjectContent)

	if projectName := project.DetectName(rootDirectory); projectName != "lighthouse" {
		testingInstance.Fatalf("expected lighthouse, got %q", projectName)
	}
}

// TestDetectNameManifestPrecedence verifies that go.mod wins over other manifests.
func TestDetectNameManifestPrecedence(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	writeManifest(testingInstance, rootDirectory, "go.mod", "module example.com/primary\n")
	writeManifest(testingInstance, rootDirectory, "package.json", `{"name": "secondary"}`)

	if projectName := project.DetectName(rootDirectory); projectName != "primary" {
		testingInstance.Fatalf("expected go.mod to take precedence, got %q", projectName)
	}
}

// TestDetectNameFallsBackToDirectory verifies the base-name fallback without manifests.
func TestDetectNameFallsBackToDirectory(testingInstance *testing.T) {
	rootDirectory := filepath.Join(testingInstance.TempDir(), "orbital")
	if makeDirError := os.Mkdir(rootDirectory, 0o755); makeDirError != nil {
		testingInstance.Fatalf("failed to create project directory: %v", makeDirError)
	}

	if projectName := project.DetectName(rootDirectory); projectName != "orbital" {
		testingInstance.Fatalf("expected directory base name, got %q", projectName)
	}
}

// TestDetectNameSkipsMalformedManifests verifies that unparseable manifests fall through silently.
func TestDetectNameSkipsMalformedManifests(testingInstance *testing.T) {
	rootDirectory := filepath.Join(testingInstance.TempDir(), "fallback")
	if makeDirError := os.Mkdir(rootDirectory, 0o755); makeDirError != nil {
		testingInstance.Fatalf("failed to create project directory: %v", makeDirError)
	}
	writeManifest(testingInstance, rootDirectory, "go.mod", "not a module file")
	writeManifest(testingInstance, rootDirectory, "package.json", "{broken json")

	if projectName := project.DetectName(rootDirectory); projectName != "fallback" {
		testingInstance.Fatalf("expected fallback to directory name, got %q", projectName)
	}
}
