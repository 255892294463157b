package commands

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ppw/internal/ports"
)

// Pipeline bundles the collaborators shared by the preprocessing commands.
// History and Publisher are optional.
type Pipeline struct {
	Compiler  ports.Compiler
	Reader    ports.DependencyLogReader
	Workspace ports.Workspace
	History   ports.RunHistory
	Publisher ports.ArtifactPublisher
	Logger    *zap.Logger

	// NewRunID generates run identifiers; defaults to random UUIDs
	NewRunID func() string
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *Pipeline) runID() string {
	if p.NewRunID != nil {
		return p.NewRunID()
	}
	return uuid.NewString()
}
