// Package project identifies the scanned repository for progress logs and the run summary.
package project

import (
	"path/filepath"
)

// nameDetector extracts a project name from one manifest kind.
type nameDetector interface {
	Manifest() string
	Detect(rootPath string) (string, bool)
}

// buildNameDetectors returns the detectors in consultation order.
func buildNameDetectors() []nameDetector {
	return []nameDetector{
		goModuleDetector{},
		npmManifestDetector{},
		pyProjectDetector{},
	}
}

// DetectName returns a best-effort display name for the project rooted at
// rootPath. Manifests are consulted in a fixed order; a missing or unparseable
// manifest falls through to the next source, and the root directory's base
// name is the final answer. The result feeds logs and the run summary only and
// never affects filtering or generation.
func DetectName(rootPath string) string {
	for _, detector := range buildNameDetectors() {
		if projectName, found := detector.Detect(rootPath); found {
			return projectName
		}
	}
	return filepath.Base(filepath.Clean(rootPath))
}
