package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ppw/internal/application"
	"ppw/internal/domain"
)

// PreprocessResult contains the result of running the pipeline on one file
type PreprocessResult struct {
	RunID     string
	Artifacts domain.ArtifactSet
	SlotCount int
	Published string // remote location, empty when publishing is disabled
	Message   string
}

// PreprocessCommand runs the single-pass flow, or the legacy two-pass flow,
// for one input file
type PreprocessCommand struct {
	pipeline  *Pipeline
	Input     string
	OutputDir string
	Flow      domain.Flow
}

// NewPreprocessCommand creates a new PreprocessCommand
func NewPreprocessCommand(p *Pipeline, input, outputDir string, flow domain.Flow) *PreprocessCommand {
	return &PreprocessCommand{
		pipeline:  p,
		Input:     input,
		OutputDir: outputDir,
		Flow:      flow,
	}
}

// Validate checks if the preprocess operation is valid
func (c *PreprocessCommand) Validate() error {
	return application.ValidateScriptPath("inputFile", c.Input)
}

// Execute runs the preprocess command
func (c *PreprocessCommand) Execute(ctx context.Context) (*PreprocessResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log := c.pipeline.logger()
	log.Info(fmt.Sprintf("WORKING ON %q", c.Input))

	res := &PreprocessResult{
		RunID:     c.pipeline.runID(),
		Artifacts: domain.ResolveArtifacts(c.Input, c.OutputDir),
	}
	started := time.Now()

	var err error
	switch c.Flow {
	case domain.FlowTwoPass:
		err = c.runTwoPass(ctx, res)
	default:
		err = c.runSinglePass(ctx, res)
	}

	c.record(ctx, res, started, err)
	if err != nil {
		return nil, err
	}

	res.Message = fmt.Sprintf("Compiled %s -> %s (%d slot(s))", c.Input, res.Artifacts.CompiledOutput, res.SlotCount)
	return res, nil
}

func (c *PreprocessCommand) prepare(res *PreprocessResult) error {
	set := res.Artifacts
	if set.DefaultedOutputDir {
		c.pipeline.logger().Warn("Assuming you want to use the original directory. Please specify the output directory",
			zap.String("outdir", set.OutputDir))
	}
	if err := c.pipeline.Workspace.EnsureDir(set.OutputDir); err != nil {
		return &application.PhaseError{Input: c.Input, Phase: "create output directory", Err: err}
	}
	return nil
}

func (c *PreprocessCommand) runSinglePass(ctx context.Context, res *PreprocessResult) error {
	if err := c.prepare(res); err != nil {
		return err
	}
	set := res.Artifacts

	c.pipeline.logger().Info(fmt.Sprintf("CLOSURE CALL %q", c.Input))
	if err := c.compile(ctx, set, domain.PhaseSingle); err != nil {
		return err
	}

	aug, err := NewAugmentCommand(c.pipeline.Reader, c.pipeline.Workspace, set.CompiledOutput, set.DepLogA, false).Execute(ctx)
	if err != nil {
		return &application.PhaseError{Input: c.Input, Phase: "prepend globals", Err: err}
	}
	res.SlotCount = aug.SlotCount

	c.publish(ctx, res)
	return nil
}

// runTwoPass harvests dependencies, forces them into a working copy through
// explicit require calls and compiles the copy. It does not follow requires
// more than one level deep.
func (c *PreprocessCommand) runTwoPass(ctx context.Context, res *PreprocessResult) error {
	if err := c.prepare(res); err != nil {
		return err
	}
	set := res.Artifacts
	log := c.pipeline.logger()

	log.Info(fmt.Sprintf("FIRST CLOSURE CALL %q", c.Input))
	if err := c.compile(ctx, set, domain.PhaseHarvest); err != nil {
		return err
	}

	if err := c.pipeline.Workspace.CopyFile(set.CleanedInput, set.WorkingCopy); err != nil {
		return &application.PhaseError{Input: c.Input, Phase: "copy input", Err: err}
	}

	aug, err := NewAugmentCommand(c.pipeline.Reader, c.pipeline.Workspace, set.WorkingCopy, set.DepLogA, true).Execute(ctx)
	if err != nil {
		return &application.PhaseError{Input: c.Input, Phase: "prepend requires", Err: err}
	}
	res.SlotCount = aug.SlotCount

	log.Info(fmt.Sprintf("SECOND CLOSURE CALL %q", c.Input))
	return c.compile(ctx, set, domain.PhaseSecond)
}

func (c *PreprocessCommand) compile(ctx context.Context, set domain.ArtifactSet, phase domain.Phase) error {
	log := c.pipeline.logger()
	req := set.Request(phase)

	out, err := c.pipeline.Compiler.Compile(ctx, req)
	if err != nil {
		return &application.PhaseError{
			Input: c.Input,
			Phase: phase.String() + " closure call",
			Err:   fmt.Errorf("%w: %v", application.ErrCompilerLaunch, err),
		}
	}

	log.Debug("closure call finished",
		zap.Stringer("phase", phase),
		zap.Int("exit", out.ExitCode),
		zap.Duration("took", out.Duration))
	if out.Stderr != "" {
		log.Warn("compiler reported errors", zap.Stringer("phase", phase), zap.String("stderr", out.Stderr))
	}
	if out.ExitCode != 0 {
		log.Warn("compiler exited with non-zero status", zap.Stringer("phase", phase), zap.Int("exit", out.ExitCode))
	}
	return nil
}

func (c *PreprocessCommand) publish(ctx context.Context, res *PreprocessResult) {
	if c.pipeline.Publisher == nil {
		return
	}
	loc, err := c.pipeline.Publisher.Publish(ctx, res.RunID, res.Artifacts.CompiledOutput)
	if err != nil {
		c.pipeline.logger().Warn("failed to publish compiled artifact",
			zap.String("file", res.Artifacts.CompiledOutput), zap.Error(err))
		return
	}
	res.Published = loc
	c.pipeline.logger().Info("published compiled artifact", zap.String("location", loc))
}

func (c *PreprocessCommand) record(ctx context.Context, res *PreprocessResult, started time.Time, runErr error) {
	if c.pipeline.History == nil {
		return
	}

	rec := domain.RunRecord{
		ID:        res.RunID,
		Input:     c.Input,
		OutputDir: res.Artifacts.OutputDir,
		Flow:      c.Flow,
		Status:    domain.RunSucceeded,
		SlotCount: res.SlotCount,
		StartedAt: started,
		Duration:  time.Since(started),
	}
	if runErr != nil {
		rec.Status = domain.RunFailed
		rec.Error = runErr.Error()
	}

	if err := c.pipeline.History.Record(ctx, rec); err != nil {
		c.pipeline.logger().Warn("failed to record run", zap.String("file", c.Input), zap.Error(err))
	}
}
