package commands

import (
	"context"
	"fmt"

	"ppw/internal/application"
	"ppw/internal/domain"
	"ppw/internal/ports"
)

// AugmentResult contains the result of prepending a synthesized header
type AugmentResult struct {
	SlotCount    int
	RequireCount int
	Header       string
	Message      string
}

// AugmentCommand prepends global slot declarations, and optionally require
// statements, read from a dependency log to a target file
type AugmentCommand struct {
	reader          ports.DependencyLogReader
	workspace       ports.Workspace
	Target          string
	DepLog          string
	IncludeRequires bool
}

// NewAugmentCommand creates a new AugmentCommand
func NewAugmentCommand(reader ports.DependencyLogReader, ws ports.Workspace, target, depLog string, includeRequires bool) *AugmentCommand {
	return &AugmentCommand{
		reader:          reader,
		workspace:       ws,
		Target:          target,
		DepLog:          depLog,
		IncludeRequires: includeRequires,
	}
}

// Validate checks if the augment operation is valid
func (c *AugmentCommand) Validate() error {
	if err := application.ValidateRequired("targetFile", c.Target); err != nil {
		return err
	}
	return application.ValidateRequired("depLog", c.DepLog)
}

// Execute runs the augment command
func (c *AugmentCommand) Execute(ctx context.Context) (*AugmentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	header, err := synthesize(c.reader, c.DepLog, c.IncludeRequires)
	if err != nil {
		return nil, err
	}

	if err := c.workspace.Prepend(c.Target, header.Header); err != nil {
		return nil, fmt.Errorf("failed to prepend header to %s: %w", c.Target, err)
	}

	header.Message = fmt.Sprintf("Prepended %d slot(s) and %d require(s) to %s", header.SlotCount, header.RequireCount, c.Target)
	return header, nil
}

// synthesize reads the dependency log and builds the header text
func synthesize(reader ports.DependencyLogReader, depLog string, includeRequires bool) (*AugmentResult, error) {
	log, err := reader.Read(depLog)
	if err != nil {
		return nil, err
	}

	res := &AugmentResult{
		SlotCount: log.Count,
		Header:    domain.SynthesizeHeader(log, includeRequires),
	}
	if includeRequires {
		res.RequireCount = len(log.Paths)
	}
	return res, nil
}

// HeaderCommand builds the header for a dependency log without writing it anywhere
type HeaderCommand struct {
	reader          ports.DependencyLogReader
	DepLog          string
	IncludeRequires bool
}

// NewHeaderCommand creates a new HeaderCommand
func NewHeaderCommand(reader ports.DependencyLogReader, depLog string, includeRequires bool) *HeaderCommand {
	return &HeaderCommand{
		reader:          reader,
		DepLog:          depLog,
		IncludeRequires: includeRequires,
	}
}

// Execute runs the header command
func (c *HeaderCommand) Execute(ctx context.Context) (*AugmentResult, error) {
	if err := application.ValidateRequired("depLog", c.DepLog); err != nil {
		return nil, err
	}

	res, err := synthesize(c.reader, c.DepLog, c.IncludeRequires)
	if err != nil {
		return nil, err
	}
	res.Message = fmt.Sprintf("%d slot(s), %d require(s)", res.SlotCount, res.RequireCount)
	return res, nil
}
