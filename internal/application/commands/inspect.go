package commands

import (
	"context"
	"fmt"
	"strings"

	"ppw/internal/application"
	"ppw/internal/domain"
	"ppw/internal/ports"
)

// InspectResult names the artifact that was opened
type InspectResult struct {
	Role    domain.ArtifactRole
	Path    string
	Command string // editor command line, set when only printing
	Message string
}

// InspectCommand opens one artifact of an input file in the user's editor
type InspectCommand struct {
	opener    ports.EditorOpener
	Input     string
	OutputDir string
	Role      domain.ArtifactRole
	PrintOnly bool
}

// NewInspectCommand creates a new InspectCommand
func NewInspectCommand(opener ports.EditorOpener, input, outputDir string, role domain.ArtifactRole) *InspectCommand {
	return &InspectCommand{
		opener:    opener,
		Input:     input,
		OutputDir: outputDir,
		Role:      role,
	}
}

// Execute runs the inspect command
func (c *InspectCommand) Execute(_ context.Context) (*InspectResult, error) {
	if err := application.ValidateScriptPath("inputFile", c.Input); err != nil {
		return nil, err
	}

	set := domain.ResolveArtifacts(c.Input, c.OutputDir)
	path, err := set.Path(c.Role)
	if err != nil {
		return nil, err
	}

	res := &InspectResult{Role: c.Role, Path: path}
	if c.PrintOnly {
		cmd, err := c.opener.Command(path)
		if err != nil {
			return nil, err
		}
		res.Command = strings.Join(cmd.Args, " ")
		res.Message = res.Command
		return res, nil
	}

	if err := c.opener.OpenFile(path); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	res.Message = fmt.Sprintf("Opened %s", path)
	return res, nil
}
