package project

import (
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

const goManifestName = "go.mod"

type goModuleDetector struct{}

func (goModuleDetector) Manifest() string {
	return goManifestName
}

// Detect reports the final element of the module path declared in go.mod.
func (goModuleDetector) Detect(rootPath string) (string, bool) {
	manifestBytes, readError := os.ReadFile(filepath.Join(rootPath, goManifestName))
	if readError != nil {
		return "", false
	}
	parsedFile, parseError := modfile.Parse(goManifestName, manifestBytes, nil)
	if parseError != nil || parsedFile == nil || parsedFile.Module == nil {
		return "", false
	}
	modulePath := parsedFile.Module.Mod.Path
	if modulePath == "" {
		return "", false
	}
	return path.Base(modulePath), true
}
