package filesystem

import (
	"os"

	"ppw/internal/domain"
	"ppw/internal/ports"
)

// DependencyLogReader implements ports.DependencyLogReader for logs on disk
type DependencyLogReader struct{}

var _ ports.DependencyLogReader = (*DependencyLogReader)(nil)

// NewDependencyLogReader creates a new reader
func NewDependencyLogReader() *DependencyLogReader {
	return &DependencyLogReader{}
}

// Read parses the whole log at path
func (r *DependencyLogReader) Read(path string) (*domain.DependencyLog, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, &domain.DependencyLogError{Path: path, Err: err}
	}
	defer f.Close()

	log, err := domain.ParseDependencyLog(f)
	if err != nil {
		return nil, &domain.DependencyLogError{Path: path, Err: err}
	}
	return log, nil
}
