package ports

import (
	"context"

	"ppw/internal/domain"
)

// RunHistory persists one record per processed input file
type RunHistory interface {
	Record(ctx context.Context, rec domain.RunRecord) error
	Recent(ctx context.Context, limit int) ([]domain.RunRecord, error)
	Close() error
}

// ArtifactPublisher uploads a finished artifact and returns its remote location
type ArtifactPublisher interface {
	Publish(ctx context.Context, runID, localPath string) (string, error)
}
