package launcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/ports"
)

var (
	// ErrEmptyCode rejects blank submissions before they reach the history log.
	ErrEmptyCode = errors.New("please enter some code")
	// ErrEntryNotFound is returned when no history entry has the given timestamp.
	ErrEntryNotFound = errors.New("history entry not found")
)

// Service ties the history log and the runner together for the CLI.
// The store and runner never call each other; only this service does.
type Service struct {
	ConfigProvider ports.ConfigProvider
	History        ports.HistoryStore
	Runner         ports.CodeRunner
	Clipboard      ports.Clipboard
	Logger         ports.Logger
}

// Submit records req.Code in history and runs it.
// A failure to record history is logged and does not stop the run.
func (s *Service) Submit(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	if err := s.check(); err != nil {
		return domain.RunResult{}, err
	}
	if strings.TrimSpace(req.Code) == "" {
		return domain.RunResult{}, ErrEmptyCode
	}

	if !req.SkipHistory {
		if err := s.History.Add(ctx, req.Code); err != nil {
			s.Logger.Warn("history not recorded", map[string]interface{}{"error": err.Error()})
		}
	}
	return s.execute(ctx, req)
}

// Rerun executes a stored entry without touching the log.
func (s *Service) Rerun(ctx context.Context, timestamp int64, req domain.RunRequest) (domain.RunResult, error) {
	if err := s.check(); err != nil {
		return domain.RunResult{}, err
	}
	entry, err := s.Entry(ctx, timestamp)
	if err != nil {
		return domain.RunResult{}, err
	}
	req.Code = entry.Code
	return s.execute(ctx, req)
}

// Entries returns the history log, most recent first.
func (s *Service) Entries(ctx context.Context) ([]domain.HistoryEntry, error) {
	if s.History == nil {
		return nil, errors.New("history store unavailable")
	}
	return s.History.Load(ctx)
}

// Entry looks up one entry by timestamp.
func (s *Service) Entry(ctx context.Context, timestamp int64) (domain.HistoryEntry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	for _, e := range entries {
		if e.Timestamp == timestamp {
			return e, nil
		}
	}
	return domain.HistoryEntry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, timestamp)
}

// Delete removes an entry. Unknown timestamps are not an error.
func (s *Service) Delete(ctx context.Context, timestamp int64) error {
	if s.History == nil {
		return errors.New("history store unavailable")
	}
	return s.History.Remove(ctx, timestamp)
}

// ClearHistory empties the log.
func (s *Service) ClearHistory(ctx context.Context) error {
	if s.History == nil {
		return errors.New("history store unavailable")
	}
	return s.History.Clear(ctx)
}

func (s *Service) execute(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("load config: %w", err)
	}

	interpreter := cfg.InterpreterPath()
	if req.InterpreterOverride != "" {
		interpreter = req.InterpreterOverride
	}
	timeout := cfg.Timeout()
	if req.TimeoutOverride > 0 {
		timeout = req.TimeoutOverride
	}

	s.Logger.Info("running snippet", map[string]interface{}{
		"interpreter": interpreter,
		"timeout":     timeout.String(),
		"bytes":       len(req.Code),
	})
	result := s.Runner.Run(ctx, req.Code, interpreter, timeout)

	if req.CopyOutput && s.Clipboard != nil && s.Clipboard.Enabled() {
		if err := s.Clipboard.Copy(result.PrimaryText()); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return result, nil
}

func (s *Service) check() error {
	if s.ConfigProvider == nil || s.History == nil || s.Runner == nil || s.Logger == nil {
		return errors.New("launcher.Service dependencies not satisfied")
	}
	return nil
}
