package domain

import "time"

// RunStatus is the outcome of processing one input file
type RunStatus string

const (
	RunSucceeded RunStatus = "ok"
	RunFailed    RunStatus = "failed"
)

// RunRecord is one entry of the run history
type RunRecord struct {
	ID        string
	Input     string
	OutputDir string
	Flow      Flow
	Status    RunStatus
	SlotCount int
	Error     string
	StartedAt time.Time
	Duration  time.Duration
}
