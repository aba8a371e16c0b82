// Package clipboard copies generated documents to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places textual content on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// SystemService implements Copier using github.com/atotto/clipboard.
type SystemService struct{}

// NewSystemService constructs the platform clipboard service.
func NewSystemService() *SystemService {
	return &SystemService{}
}

// Copy writes text to the system clipboard. Callers treat a failure as a
// warning: the document on disk is the product, the clipboard is convenience.
func (service *SystemService) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*SystemService)(nil)
