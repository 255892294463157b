package ports

import (
	"context"

	"ppw/internal/domain"
)

// Compiler runs the external optimizing compiler for one invocation.
// A non-zero exit status is reported in the result, not as an error; only a
// failure to launch or wait for the process is returned as an error.
type Compiler interface {
	Compile(ctx context.Context, req domain.CompileRequest) (*domain.CompileResult, error)
}

// ScriptRunner executes a script with the JavaScript runtime. A script that
// exits non-zero is reported in the result; a script that cannot be found or
// a runtime that cannot be launched is an error.
type ScriptRunner interface {
	Run(ctx context.Context, dir, script string) (*domain.ScriptResult, error)
}
