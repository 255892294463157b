package domain

import "time"

// Phase identifies one of the three compiler invocation shapes
type Phase int

const (
	PhaseSingle  Phase = iota // compile cleaned input, log to A
	PhaseHarvest              // dependency harvest only, no output file
	PhaseSecond               // legacy second pass over the working copy, log to B
)

func (p Phase) String() string {
	switch p {
	case PhaseSingle:
		return "single"
	case PhaseHarvest:
		return "harvest"
	case PhaseSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Flow selects the pipeline variant
type Flow int

const (
	FlowSinglePass Flow = iota
	FlowTwoPass           // legacy; does not resolve multi-level requires
)

func (f Flow) String() string {
	if f == FlowTwoPass {
		return "two-pass"
	}
	return "single-pass"
}

// ParseFlowName is the inverse of Flow.String; unknown names map to FlowSinglePass
func ParseFlowName(name string) Flow {
	if name == "two-pass" {
		return FlowTwoPass
	}
	return FlowSinglePass
}

// CompileRequest is a single compiler invocation. Output is empty when the
// phase requests no output file.
type CompileRequest struct {
	Phase  Phase
	Input  string
	Output string
	Log    string
	DepLog string
}

// CompileResult holds what an invocation printed
type CompileResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// ScriptResult holds what a script run printed and how it exited
type ScriptResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Request returns the invocation for phase using paths from the set.
func (s ArtifactSet) Request(phase Phase) CompileRequest {
	switch phase {
	case PhaseHarvest:
		return CompileRequest{
			Phase:  phase,
			Input:  s.CleanedInput,
			Log:    s.LogA,
			DepLog: s.DepLogA,
		}
	case PhaseSecond:
		return CompileRequest{
			Phase:  phase,
			Input:  s.WorkingCopy,
			Output: s.CompiledOutput,
			Log:    s.LogB,
			DepLog: s.DepLogB,
		}
	default:
		return CompileRequest{
			Phase:  PhaseSingle,
			Input:  s.CleanedInput,
			Output: s.CompiledOutput,
			Log:    s.LogA,
			DepLog: s.DepLogA,
		}
	}
}
