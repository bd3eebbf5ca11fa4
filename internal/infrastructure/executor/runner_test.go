package executor

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/pyrun/internal/domain"
)

// sh accepts "-c <program>" exactly like python, so it stands in for the
// interpreter wherever python itself is not the point of the test.
func requireSh(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return path
}

func TestRun_CleanSuccess(t *testing.T) {
	sh := requireSh(t)
	res := NewLocalRunner(nil).Run(context.Background(), "echo 2", sh, 5*time.Second)

	assert.Equal(t, "2\n", res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Empty(t, res.Error)
	assert.False(t, res.Failed())
	assert.NotEmpty(t, res.RunID)
}

func TestRun_CodeIsPassedAsSingleArgument(t *testing.T) {
	sh := requireSh(t)
	code := "printf '%s|' first\nprintf '%s' second"
	res := NewLocalRunner(nil).Run(context.Background(), code, sh, 5*time.Second)

	assert.Equal(t, "first|second", res.Stdout)
}

func TestRun_StderrWinsOverGenericError(t *testing.T) {
	sh := requireSh(t)
	res := NewLocalRunner(nil).Run(context.Background(), "echo partial; echo 'ValueError: x' >&2; exit 1", sh, 5*time.Second)

	assert.Equal(t, "partial\n", res.Stdout)
	assert.Contains(t, res.Stderr, "ValueError: x")
	assert.Empty(t, res.Error)
	assert.True(t, res.Failed())
}

func TestRun_StderrWithCleanExit(t *testing.T) {
	sh := requireSh(t)
	res := NewLocalRunner(nil).Run(context.Background(), "echo warning >&2", sh, 5*time.Second)

	assert.Equal(t, "warning\n", res.Stderr)
	assert.Empty(t, res.Error)
	assert.True(t, res.Failed())
}

func TestRun_SilentNonZeroExit(t *testing.T) {
	sh := requireSh(t)
	res := NewLocalRunner(nil).Run(context.Background(), "exit 3", sh, 5*time.Second)

	assert.Empty(t, res.Stderr)
	assert.Equal(t, "exit status 3", res.Error)
}

func TestRun_Timeout(t *testing.T) {
	sh := requireSh(t)
	start := time.Now()
	res := NewLocalRunner(nil).Run(context.Background(), "echo started; sleep 10", sh, 300*time.Millisecond)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, res.TimedOut)
	assert.Equal(t, "Execution timed out (1 second limit)", res.Error)
	assert.True(t, res.Failed())
}

func TestRun_MissingInterpreter(t *testing.T) {
	for _, interpreter := range []string{"nonexistent-python-xyz-123", "/nonexistent/bin/python3"} {
		t.Run(interpreter, func(t *testing.T) {
			res := NewLocalRunner(nil).Run(context.Background(), "print(1)", interpreter, 5*time.Second)

			assert.Empty(t, res.Stdout)
			assert.Empty(t, res.Stderr)
			assert.Contains(t, res.Error, interpreter)
			assert.False(t, res.TimedOut)
		})
	}
}

func TestRun_ParentCancellation(t *testing.T) {
	sh := requireSh(t)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	res := NewLocalRunner(nil).Run(ctx, "sleep 10", sh, 10*time.Second)

	assert.False(t, res.TimedOut)
	assert.True(t, strings.HasPrefix(res.Error, "execution cancelled"), res.Error)
}

func TestLimitSeconds(t *testing.T) {
	assert.Equal(t, 10, limitSeconds(domain.DefaultRunTimeout))
	assert.Equal(t, 1, limitSeconds(250*time.Millisecond))
}

func requirePython(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath(domain.DefaultInterpreter)
	if err != nil {
		t.Skip("python3 not available")
	}
	return path
}

func TestRun_Python(t *testing.T) {
	python := requirePython(t)
	runner := NewLocalRunner(nil)
	ctx := context.Background()

	res := runner.Run(ctx, "print(1+1)", python, domain.DefaultRunTimeout)
	assert.Equal(t, domain.RunResult{RunID: res.RunID, Stdout: "2\n", DurationMS: res.DurationMS}, res)

	res = runner.Run(ctx, `raise ValueError("x")`, python, domain.DefaultRunTimeout)
	assert.Contains(t, res.Stderr, "ValueError: x")
	assert.Empty(t, res.Error)
}

func TestRun_DefaultInterpreterWhenEmpty(t *testing.T) {
	requirePython(t)
	res := NewLocalRunner(nil).Run(context.Background(), "print('ok')", "", 0)
	require.Empty(t, res.Error)
	assert.Equal(t, "ok\n", res.Stdout)
}
