package closure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"ppw/internal/domain"
	"ppw/internal/ports"
)

// Defaults for a stock installation
const (
	DefaultRuntime     = "java"
	DefaultJar         = "closure-compiler.jar"
	DefaultLanguageOut = "ECMASCRIPT_2015"
)

// Compiler implements ports.Compiler by running the require-resolving
// Closure Compiler fork as a subprocess
type Compiler struct {
	runtime         string
	jar             string
	builtinSource   string
	languageOut     string
	resolveBuiltins bool
	timeout         time.Duration
}

// Ensure Compiler implements ports.Compiler
var _ ports.Compiler = (*Compiler)(nil)

// Option configures the Compiler
type Option func(*Compiler)

// WithRuntime sets the binary used to launch the jar
func WithRuntime(runtime string) Option {
	return func(c *Compiler) {
		c.runtime = runtime
	}
}

// WithJar sets the compiler jar location
func WithJar(jar string) Option {
	return func(c *Compiler) {
		c.jar = jar
	}
}

// WithBuiltinSource sets the runtime's builtin-module source tree
func WithBuiltinSource(dir string) Option {
	return func(c *Compiler) {
		c.builtinSource = dir
	}
}

// WithLanguageOut sets the output language level
func WithLanguageOut(level string) Option {
	return func(c *Compiler) {
		c.languageOut = level
	}
}

// WithResolveBuiltins toggles resolution of modules compiled into the runtime
func WithResolveBuiltins(resolve bool) Option {
	return func(c *Compiler) {
		c.resolveBuiltins = resolve
	}
}

// WithTimeout bounds a single invocation. Zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Compiler) {
		c.timeout = d
	}
}

// NewCompiler creates a new compiler adapter
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		runtime:     DefaultRuntime,
		jar:         DefaultJar,
		languageOut: DefaultLanguageOut,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Args builds the argument vector for req, excluding the runtime binary
func (c *Compiler) Args(req domain.CompileRequest) []string {
	args := []string{
		"-jar", c.jar,
		"--module_resolution", "NODE",
		"--compilation_level", "WHITESPACE_ONLY",
		"--formatting", "PRETTY_PRINT",
		"--language_out", c.languageOut,
		"--js", req.Input,
	}
	if req.Output != "" {
		args = append(args, "--js_output_file", req.Output)
	}
	return append(args,
		"--reset_rrl", "true",
		"--require_resolve_log_location", req.Log,
		"--DFS_tracking_log_location", req.DepLog,
		"--nodejs_source", c.builtinSource,
		"--resolve_NSC", strconv.FormatBool(c.resolveBuiltins),
	)
}

// Command returns the full command line for req, runtime first
func (c *Compiler) Command(req domain.CompileRequest) []string {
	return append([]string{c.runtime}, c.Args(req)...)
}

// Compile runs the compiler and waits for it to exit
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) (*domain.CompileResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.runtime, c.Args(req)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := &domain.CompileResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("compiler %s: %w", c.runtime, err)
	}

	return result, nil
}

// IsAvailable checks if the runtime binary is installed and accessible
func (c *Compiler) IsAvailable() bool {
	_, err := exec.LookPath(c.runtime)
	return err == nil
}
