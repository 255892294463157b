package commands

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"

	"ppw/internal/domain"
)

// fakeCompiler stands in for the external compiler: it writes the dependency
// log and compiled output the way the real compiler would
type fakeCompiler struct {
	mu       sync.Mutex
	depLog   string // written to req.DepLog when non-empty
	output   string // written to req.Output when the request has one
	stderr   string
	exitCode int
	failFor  map[string]bool // inputs whose launch fails
	panicFor map[string]bool
	calls    []domain.CompileRequest
}

func (f *fakeCompiler) Compile(_ context.Context, req domain.CompileRequest) (*domain.CompileResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.panicFor[req.Input] {
		panic("compiler adapter blew up")
	}
	if f.failFor[req.Input] {
		return nil, errors.New(`exec: "java": executable file not found in $PATH`)
	}
	if f.depLog != "" {
		if err := os.WriteFile(req.DepLog, []byte(f.depLog), 0644); err != nil {
			return nil, err
		}
	}
	if req.Output != "" {
		if err := os.WriteFile(req.Output, []byte(f.output), 0644); err != nil {
			return nil, err
		}
	}
	return &domain.CompileResult{Stderr: f.stderr, ExitCode: f.exitCode}, nil
}

func (f *fakeCompiler) phases() []domain.Phase {
	var out []domain.Phase
	for _, c := range f.calls {
		out = append(out, c.Phase)
	}
	return out
}

type fakeHistory struct {
	records []domain.RunRecord
	err     error
}

func (h *fakeHistory) Record(_ context.Context, rec domain.RunRecord) error {
	if h.err != nil {
		return h.err
	}
	h.records = append(h.records, rec)
	return nil
}

func (h *fakeHistory) Recent(_ context.Context, limit int) ([]domain.RunRecord, error) {
	if limit > len(h.records) {
		limit = len(h.records)
	}
	return h.records[:limit], nil
}

func (h *fakeHistory) Close() error { return nil }

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, runID, localPath string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.published = append(p.published, localPath)
	return "s3://bucket/" + runID, nil
}

type fakeRunner struct {
	outputs map[string]string // script path -> stdout
	exits   map[string]int    // script path -> exit code
	err     error
	dirs    []string
}

func (r *fakeRunner) Run(_ context.Context, dir, script string) (*domain.ScriptResult, error) {
	r.dirs = append(r.dirs, dir)
	if r.err != nil {
		return nil, r.err
	}
	return &domain.ScriptResult{Stdout: r.outputs[script], ExitCode: r.exits[script]}, nil
}

// contains reports whether substr is within s
func contains(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) OpenFile(path string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, path)
	return nil
}

func (o *fakeOpener) Command(path string) (*exec.Cmd, error) {
	if o.err != nil {
		return nil, o.err
	}
	return exec.Command("vi", path), nil
}
