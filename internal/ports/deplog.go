package ports

import "ppw/internal/domain"

// DependencyLogReader reads the sidecar dependency log the compiler writes
type DependencyLogReader interface {
	// Read returns the slot count and every non-empty path line, in file order
	Read(path string) (*domain.DependencyLog, error)
}
