// Package output persists the generated guide document.
package output

import (
	"fmt"
	"os"
)

const documentFileMode = 0o644

// SaveDocument writes the generated document to outputPath exactly as
// generated. The whole file is the product: there is no partial write mode,
// and a failure here fails the run.
func SaveDocument(outputPath string, document string) error {
	if writeError := os.WriteFile(outputPath, []byte(document), documentFileMode); writeError != nil {
		return fmt.Errorf("write document to %s: %w", outputPath, writeError)
	}
	return nil
}
