package node

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ppw/internal/domain"
	"ppw/internal/ports"
)

// DefaultBinary is the JavaScript runtime used to execute scripts
const DefaultBinary = "node"

// Runner implements ports.ScriptRunner with the node binary
type Runner struct {
	binary string
}

// Ensure Runner implements ports.ScriptRunner
var _ ports.ScriptRunner = (*Runner)(nil)

// NewRunner creates a runner; an empty binary selects DefaultBinary
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{binary: binary}
}

// Run executes script with dir as working directory. script is resolved
// against the caller's working directory before dir is applied, so relative
// paths name the same file they name for the caller.
func (r *Runner) Run(ctx context.Context, dir, script string) (*domain.ScriptResult, error) {
	abs, err := filepath.Abs(script)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", script, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("script not available: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, abs)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := &domain.ScriptResult{}
	err = cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, fmt.Errorf("%s error: %w (%s)", r.binary, err, strings.TrimSpace(stderr.String()))
	}
	return res, nil
}
