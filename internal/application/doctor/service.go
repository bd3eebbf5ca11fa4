package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	History        ports.HistoryStore
	Clipboard      ports.Clipboard

	// LookPath resolves the interpreter; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.interpreterCheck(cfg))

	if s.History != nil {
		if entries, err := s.History.Load(ctx); err != nil {
			checks = append(checks, fail("History storage", err.Error()))
		} else {
			checks = append(checks, ok("History storage",
				fmt.Sprintf("%s backend, %d/%d entries", cfg.Storage.Backend, len(entries), domain.MaxEntries)))
		}
	} else {
		checks = append(checks, warn("History storage", "history store not initialized"))
	}

	if s.Clipboard != nil && s.Clipboard.Enabled() {
		checks = append(checks, ok("Clipboard", "available"))
	} else {
		checks = append(checks, warn("Clipboard", "not supported on this platform"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) interpreterCheck(cfg domain.Config) domain.HealthCheck {
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	interpreter := cfg.InterpreterPath()
	resolved, err := lookPath(interpreter)
	if err != nil {
		return fail("Interpreter", fmt.Sprintf("%s not found: %v", interpreter, err))
	}
	return ok("Interpreter", fmt.Sprintf("%s (timeout %s)", resolved, cfg.Timeout()))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
