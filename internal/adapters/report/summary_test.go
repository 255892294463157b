package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ppw/internal/application/commands"
	"ppw/internal/domain"
)

func TestRenderSummary(t *testing.T) {
	ok := &commands.PreprocessResult{
		Artifacts: domain.ResolveArtifacts("/src/a.js", "/out"),
		SlotCount: 3,
	}
	res := &commands.BatchResult{Files: []commands.FileResult{
		{Entry: commands.BatchEntry{Input: "/src/a.js", OutputDir: "/out"}, Result: ok},
		{Entry: commands.BatchEntry{Input: "/src/b.js"}, Err: errors.New("dependency log missing")},
	}}

	out := RenderSummary(res)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "OK")
	assert.Contains(t, lines[0], "/out/a-out.compiled.js")
	assert.Contains(t, lines[0], "(3 slot(s))")
	assert.Contains(t, lines[1], "FAIL")
	assert.Contains(t, lines[1], "/src/b.js")
	assert.Contains(t, lines[2], "dependency log missing")
	assert.Contains(t, lines[3], "2 file(s), 1 ok, 1 failed")
}

func TestRenderArtifacts(t *testing.T) {
	out := RenderArtifacts(domain.ResolveArtifacts("/src/main.js", ""))

	for _, role := range domain.Roles {
		assert.Contains(t, out, string(role))
	}
	assert.Contains(t, out, "/src/ppw/main-out.compiled.js")
	assert.Contains(t, out, "output directory defaulted to /src/ppw/")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, RenderHistory(nil), "No runs recorded.")

	out := RenderHistory([]domain.RunRecord{
		{Input: "/src/a.js", Status: domain.RunSucceeded, Flow: domain.FlowTwoPass, StartedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Duration: 1200 * time.Millisecond},
		{Input: "/src/b.js", Status: domain.RunFailed, Error: "launch failed"},
	})
	assert.Contains(t, out, "2024-01-02 03:04:05")
	assert.Contains(t, out, "two-pass")
	assert.Contains(t, out, "1.2s")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "launch failed")
}
