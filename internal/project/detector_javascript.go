package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const npmManifestFileName = "package.json"

type npmManifest struct {
	Name string `json:"name"`
}

type npmManifestDetector struct{}

func (npmManifestDetector) Manifest() string {
	return npmManifestFileName
}

// Detect reports the name field of package.json.
func (npmManifestDetector) Detect(rootPath string) (string, bool) {
	manifestBytes, readError := os.ReadFile(filepath.Join(rootPath, npmManifestFileName))
	if readError != nil {
		return "", false
	}
	var manifest npmManifest
	if unmarshalError := json.Unmarshal(manifestBytes, &manifest); unmarshalError != nil {
		return "", false
	}
	projectName := strings.TrimSpace(manifest.Name)
	if projectName == "" {
		return "", false
	}
	return projectName, true
}
