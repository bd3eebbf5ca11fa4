package domain

import (
	"fmt"
	"time"
)

// RunResult is the classified outcome of one interpreter invocation.
//
// Error is only set when the interpreter produced no stderr of its own
// (launch failure, silent non-zero exit) or when the run timed out.
type RunResult struct {
	RunID      string `json:"run_id,omitempty"`
	Stdout     string `json:"stdout"`
	Stderr     string `json:"stderr"`
	Error      string `json:"error,omitempty"`
	TimedOut   bool   `json:"timed_out,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// Failed reports whether the caller should present the run as a failure.
func (r RunResult) Failed() bool {
	return r.Error != "" || r.Stderr != ""
}

// Empty reports whether the run produced nothing at all.
func (r RunResult) Empty() bool {
	return r.Stdout == "" && r.Stderr == "" && r.Error == ""
}

// PrimaryText picks the text worth copying: error, then stderr, then stdout.
func (r RunResult) PrimaryText() string {
	switch {
	case r.Error != "":
		return r.Error
	case r.Stderr != "":
		return r.Stderr
	default:
		return r.Stdout
	}
}

// TimeoutMessage renders the fixed message used when a run is killed.
func TimeoutMessage(seconds int) string {
	return fmt.Sprintf("Execution timed out (%d second limit)", seconds)
}

// RunRequest captures one execution request from the CLI.
type RunRequest struct {
	Code                string
	InterpreterOverride string
	TimeoutOverride     time.Duration
	SkipHistory         bool
	CopyOutput          bool
}
