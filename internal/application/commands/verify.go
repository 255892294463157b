package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"ppw/internal/application"
	"ppw/internal/domain"
	"ppw/internal/ports"
)

// VerifyResult compares the output of the original script with the output
// of its compiled artifact
type VerifyResult struct {
	Artifacts     domain.ArtifactSet
	Original      string
	Compiled      string
	OriginalExit  int
	CompiledExit  int
	FirstMismatch int // zero-based line index, -1 when outputs match
	Diff          string
}

// Match reports whether both runs printed the same lines and exited alike
func (r *VerifyResult) Match() bool {
	return r.FirstMismatch < 0 && r.OriginalExit == r.CompiledExit
}

// VerifyCommand runs the original and compiled scripts and compares stdout
type VerifyCommand struct {
	runner    ports.ScriptRunner
	Input     string
	OutputDir string
}

// NewVerifyCommand creates a new VerifyCommand
func NewVerifyCommand(runner ports.ScriptRunner, input, outputDir string) *VerifyCommand {
	return &VerifyCommand{
		runner:    runner,
		Input:     input,
		OutputDir: outputDir,
	}
}

// Execute runs the verify command. A mismatch returns the result together
// with an error wrapping ErrOutputMismatch.
func (c *VerifyCommand) Execute(ctx context.Context) (*VerifyResult, error) {
	if err := application.ValidateScriptPath("inputFile", c.Input); err != nil {
		return nil, err
	}

	set := domain.ResolveArtifacts(c.Input, c.OutputDir)
	res := &VerifyResult{Artifacts: set, FirstMismatch: -1}

	orun, err := c.runner.Run(ctx, set.SourceDir, set.CleanedInput)
	if err != nil {
		return nil, fmt.Errorf("failed to run original: %w", err)
	}
	// The compiled artifact resolves its requires relative to the output directory
	crun, err := c.runner.Run(ctx, set.OutputDir, set.CompiledOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to run compiled output: %w", err)
	}
	res.Original, res.OriginalExit = orun.Stdout, orun.ExitCode
	res.Compiled, res.CompiledExit = crun.Stdout, crun.ExitCode

	orig := strings.Split(res.Original, "\n")
	comp := strings.Split(res.Compiled, "\n")
	res.FirstMismatch = firstMismatch(orig, comp)
	if res.Match() {
		return res, nil
	}

	if res.FirstMismatch < 0 {
		return res, fmt.Errorf("%w: %s exited %d, compiled output exited %d",
			application.ErrOutputMismatch, c.Input, res.OriginalExit, res.CompiledExit)
	}
	res.Diff = cmp.Diff(orig, comp)
	return res, fmt.Errorf("%w: %s first differs at line %d", application.ErrOutputMismatch, c.Input, res.FirstMismatch)
}

func firstMismatch(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
