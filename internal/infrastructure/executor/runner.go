// Package executor runs snippets through an external interpreter.
package executor

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/ports"
)

// LocalRunner spawns the interpreter on the host as
// `<interpreter> -c <code>` and buffers both output streams.
type LocalRunner struct {
	logger    ports.Logger
	killGrace time.Duration
}

// NewLocalRunner builds a runner. logger may be nil.
func NewLocalRunner(logger ports.Logger) *LocalRunner {
	return &LocalRunner{logger: logger, killGrace: domain.KillGracePeriod}
}

// Run implements ports.CodeRunner.
//
// The result carries the interpreter's stderr verbatim when there is any.
// Error is set for a timeout, or for a launch failure or non-zero exit that
// left stderr empty.
func (r *LocalRunner) Run(ctx context.Context, code, interpreter string, timeout time.Duration) domain.RunResult {
	if interpreter == "" {
		interpreter = domain.DefaultInterpreter
	}
	if timeout <= 0 {
		timeout = domain.DefaultRunTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(runCtx, interpreter, domain.InlineProgramFlag, code)
	c.WaitDelay = r.killGrace
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	runID := uuid.New().String()
	r.debug("run started", map[string]interface{}{
		"run_id":      runID,
		"interpreter": interpreter,
		"timeout":     timeout.String(),
	})

	start := time.Now()
	err := c.Run()

	result := domain.RunResult{
		RunID:      runID,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	switch {
	case err == nil:
	case ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.TimedOut = true
		result.Error = domain.TimeoutMessage(limitSeconds(timeout))
	case ctx.Err() != nil:
		result.Error = "execution cancelled: " + ctx.Err().Error()
	case result.Stderr == "":
		result.Error = err.Error()
	}

	r.debug("run finished", map[string]interface{}{
		"run_id":      runID,
		"duration_ms": result.DurationMS,
		"failed":      result.Failed(),
		"timed_out":   result.TimedOut,
		"exit_code":   exitCode(err),
	})
	return result
}

func (r *LocalRunner) debug(msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, fields)
	}
}

func limitSeconds(timeout time.Duration) int {
	return int(math.Ceil(timeout.Seconds()))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

var _ ports.CodeRunner = (*LocalRunner)(nil)
