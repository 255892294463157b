package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"ppw/internal/application"
	"ppw/internal/domain"
)

// BatchEntry pairs an input file with its output directory
type BatchEntry struct {
	Input     string
	OutputDir string
}

// FileResult is the outcome for one batch entry: either Result or Err is set
type FileResult struct {
	Entry  BatchEntry
	Result *PreprocessResult
	Err    error
}

// OK reports whether the entry was processed successfully
func (r FileResult) OK() bool {
	return r.Err == nil
}

// BatchResult aggregates the per-file outcomes in input order
type BatchResult struct {
	Files []FileResult
}

// Failed returns the number of entries that did not complete
func (b *BatchResult) Failed() int {
	n := 0
	for _, f := range b.Files {
		if !f.OK() {
			n++
		}
	}
	return n
}

// BatchCommand processes entries one after another. A failure on one entry
// is captured in its FileResult and never stops the remaining entries.
type BatchCommand struct {
	pipeline *Pipeline
	Entries  []BatchEntry
	Flow     domain.Flow
}

// NewBatchCommand creates a new BatchCommand
func NewBatchCommand(p *Pipeline, entries []BatchEntry, flow domain.Flow) *BatchCommand {
	return &BatchCommand{
		pipeline: p,
		Entries:  entries,
		Flow:     flow,
	}
}

// Validate checks if the batch operation is valid
func (c *BatchCommand) Validate() error {
	if len(c.Entries) == 0 {
		return &application.ValidationError{
			Field:   "listFile",
			Message: "file list contains no input files",
		}
	}
	return nil
}

// Execute runs the batch command
func (c *BatchCommand) Execute(ctx context.Context) (*BatchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &BatchResult{Files: make([]FileResult, 0, len(c.Entries))}
	for _, entry := range c.Entries {
		if err := ctx.Err(); err != nil {
			result.Files = append(result.Files, FileResult{Entry: entry, Err: err})
			continue
		}
		result.Files = append(result.Files, c.processOne(ctx, entry))
	}
	return result, nil
}

func (c *BatchCommand) processOne(ctx context.Context, entry BatchEntry) (fr FileResult) {
	fr.Entry = entry

	defer func() {
		if r := recover(); r != nil {
			fr.Result = nil
			fr.Err = fmt.Errorf("panic while processing %s: %v", entry.Input, r)
			c.pipeline.logger().Error("There was an exception processing file",
				zap.String("file", entry.Input), zap.Error(fr.Err))
		}
	}()

	res, err := NewPreprocessCommand(c.pipeline, entry.Input, entry.OutputDir, c.Flow).Execute(ctx)
	if err != nil {
		c.pipeline.logger().Error("There was an exception processing file",
			zap.String("file", entry.Input), zap.Error(err))
		fr.Err = err
		return fr
	}
	fr.Result = res
	return fr
}

// ParseBatchLists reads one input path per line from files. When dirs is
// non-nil its lines are paired with the inputs line for line, and inputs past
// the end of dirs get an empty output directory. Otherwise every input uses
// defaultOutputDir. Blank input lines are skipped along with their paired
// directory line.
func ParseBatchLists(files io.Reader, dirs io.Reader, defaultOutputDir string) ([]BatchEntry, error) {
	var dirScanner *bufio.Scanner
	if dirs != nil {
		dirScanner = bufio.NewScanner(dirs)
	}

	var entries []BatchEntry
	fileScanner := bufio.NewScanner(files)
	for fileScanner.Scan() {
		outputDir := defaultOutputDir
		if dirScanner != nil {
			outputDir = ""
			if dirScanner.Scan() {
				outputDir = strings.TrimSpace(dirScanner.Text())
			}
		}

		input := strings.TrimSpace(fileScanner.Text())
		if input == "" {
			continue
		}
		entries = append(entries, BatchEntry{Input: input, OutputDir: outputDir})
	}
	if err := fileScanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file list: %w", err)
	}
	if dirScanner != nil {
		if err := dirScanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read output directory list: %w", err)
		}
	}
	return entries, nil
}
