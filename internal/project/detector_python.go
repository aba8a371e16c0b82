package project

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	pyProjectFileName    = "pyproject.toml"
	pyProjectSectionName = "project"
)

type pyProjectDetector struct{}

func (pyProjectDetector) Manifest() string {
	return pyProjectFileName
}

// Detect reports the name key of the [project] table in pyproject.toml.
// Tables such as [tool.poetry] are ignored.
func (pyProjectDetector) Detect(rootPath string) (string, bool) {
	manifestFile, openError := os.Open(filepath.Join(rootPath, pyProjectFileName))
	if openError != nil {
		return "", false
	}
	defer manifestFile.Close()

	currentSection := ""
	scanner := bufio.NewScanner(manifestFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSpace(strings.Trim(line, "[]"))
			continue
		}
		if currentSection != pyProjectSectionName {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) != "name" {
			continue
		}
		projectName := strings.Trim(strings.TrimSpace(value), `"'`)
		if projectName == "" {
			return "", false
		}
		return projectName, true
	}
	return "", false
}
