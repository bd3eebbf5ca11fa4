package launcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/infrastructure/history"
	"github.com/doeshing/pyrun/internal/infrastructure/kv"
	"github.com/doeshing/pyrun/internal/pkg/logger"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type runCall struct {
	code        string
	interpreter string
	timeout     time.Duration
}

type stubRunner struct {
	result domain.RunResult
	calls  []runCall
}

func (s *stubRunner) Run(_ context.Context, code, interpreter string, timeout time.Duration) domain.RunResult {
	s.calls = append(s.calls, runCall{code: code, interpreter: interpreter, timeout: timeout})
	return s.result
}

type stubClipboard struct {
	copied []string
}

func (s *stubClipboard) Copy(text string) error {
	s.copied = append(s.copied, text)
	return nil
}

func (s *stubClipboard) Enabled() bool { return true }

type failingHistory struct{ err error }

func (f failingHistory) Load(context.Context) ([]domain.HistoryEntry, error) { return nil, f.err }
func (f failingHistory) Add(context.Context, string) error                   { return f.err }
func (f failingHistory) Remove(context.Context, int64) error                 { return f.err }
func (f failingHistory) Clear(context.Context) error                         { return f.err }

// tickingClock keeps timestamps distinct so lookups by timestamp are unambiguous.
func tickingClock() func() time.Time {
	now := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

func newService(runner *stubRunner) *Service {
	return &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{}},
		History:        history.NewStore(kv.NewMemoryStore(), history.WithClock(tickingClock())),
		Runner:         runner,
		Logger:         logger.Nop(),
	}
}

func TestSubmitRecordsAndRuns(t *testing.T) {
	runner := &stubRunner{result: domain.RunResult{Stdout: "2\n"}}
	svc := newService(runner)
	ctx := context.Background()

	res, err := svc.Submit(ctx, domain.RunRequest{Code: "print(1+1)"})
	require.NoError(t, err)
	assert.Equal(t, "2\n", res.Stdout)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, runCall{code: "print(1+1)", interpreter: domain.DefaultInterpreter, timeout: domain.DefaultRunTimeout}, runner.calls[0])

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "print(1+1)", entries[0].Code)
}

func TestSubmitRejectsBlankCode(t *testing.T) {
	runner := &stubRunner{}
	svc := newService(runner)

	for _, code := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(context.Background(), domain.RunRequest{Code: code})
		assert.ErrorIs(t, err, ErrEmptyCode)
	}
	assert.Empty(t, runner.calls)
	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitHonoursOverridesAndConfig(t *testing.T) {
	runner := &stubRunner{}
	svc := newService(runner)
	svc.ConfigProvider = stubConfigProvider{cfg: domain.Config{
		Interpreter: domain.InterpreterSettings{Path: "/opt/py/bin/python3", TimeoutSeconds: 3},
	}}
	ctx := context.Background()

	_, err := svc.Submit(ctx, domain.RunRequest{Code: "pass"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, domain.RunRequest{Code: "pass", InterpreterOverride: "pypy3", TimeoutOverride: time.Second})
	require.NoError(t, err)

	assert.Equal(t, "/opt/py/bin/python3", runner.calls[0].interpreter)
	assert.Equal(t, 3*time.Second, runner.calls[0].timeout)
	assert.Equal(t, "pypy3", runner.calls[1].interpreter)
	assert.Equal(t, time.Second, runner.calls[1].timeout)
}

func TestSubmitSkipHistory(t *testing.T) {
	svc := newService(&stubRunner{})
	_, err := svc.Submit(context.Background(), domain.RunRequest{Code: "pass", SkipHistory: true})
	require.NoError(t, err)

	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitRunsEvenWhenHistoryFails(t *testing.T) {
	runner := &stubRunner{result: domain.RunResult{Stdout: "ok\n"}}
	svc := newService(runner)
	svc.History = failingHistory{err: errors.New("disk full")}

	res, err := svc.Submit(context.Background(), domain.RunRequest{Code: "print('ok')"})
	require.NoError(t, err)
	assert.Equal(t, "ok\n", res.Stdout)
	assert.Len(t, runner.calls, 1)
}

func TestSubmitConfigErrorPropagates(t *testing.T) {
	svc := newService(&stubRunner{})
	svc.ConfigProvider = stubConfigProvider{err: errors.New("bad yaml")}

	_, err := svc.Submit(context.Background(), domain.RunRequest{Code: "pass"})
	assert.ErrorContains(t, err, "bad yaml")
}

func TestSubmitCopiesPrimaryText(t *testing.T) {
	clip := &stubClipboard{}
	svc := newService(&stubRunner{result: domain.RunResult{Stdout: "out", Stderr: "Traceback"}})
	svc.Clipboard = clip

	_, err := svc.Submit(context.Background(), domain.RunRequest{Code: "x", CopyOutput: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Traceback"}, clip.copied)
}

func TestRerunDoesNotTouchHistory(t *testing.T) {
	runner := &stubRunner{}
	svc := newService(runner)
	ctx := context.Background()

	_, err := svc.Submit(ctx, domain.RunRequest{Code: "a"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, domain.RunRequest{Code: "b"})
	require.NoError(t, err)
	before, err := svc.Entries(ctx)
	require.NoError(t, err)

	_, err = svc.Rerun(ctx, before[1].Timestamp, domain.RunRequest{})
	require.NoError(t, err)
	assert.Equal(t, "a", runner.calls[2].code)

	after, err := svc.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRerunUnknownEntry(t *testing.T) {
	svc := newService(&stubRunner{})
	_, err := svc.Rerun(context.Background(), 12345, domain.RunRequest{})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteAndClear(t *testing.T) {
	svc := newService(&stubRunner{})
	ctx := context.Background()
	for _, code := range []string{"a", "b", "c"} {
		_, err := svc.Submit(ctx, domain.RunRequest{Code: code})
		require.NoError(t, err)
	}
	entries, err := svc.Entries(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, entries[0].Timestamp))
	require.NoError(t, svc.Delete(ctx, -1))
	remaining, err := svc.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, len(entries)-1)

	require.NoError(t, svc.ClearHistory(ctx))
	remaining, err = svc.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestMissingDependencies(t *testing.T) {
	_, err := (&Service{}).Submit(context.Background(), domain.RunRequest{Code: "x"})
	assert.Error(t, err)
}
