// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The launcher core only depends on these abstractions. Concrete adapters
// (sqlite or file persistence, os/exec, the terminal) live in the
// infrastructure layer and are wired together in internal/app.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/pyrun/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.pyrun/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// KeyValueStore is a flat string-keyed persistence layer.
// Get reports ok=false for a missing key rather than an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// HistoryStore owns the bounded, deduplicated, most-recent-first log of
// submitted snippets. Mutations are read-modify-write without locking;
// concurrent writers race and the last write wins.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.HistoryEntry, error)
	Add(ctx context.Context, code string) error
	Remove(ctx context.Context, timestamp int64) error
	Clear(ctx context.Context) error
}

// CodeRunner executes a snippet with an external interpreter.
// Outcomes are reported in the result; only programming errors are returned.
type CodeRunner interface {
	Run(ctx context.Context, code, interpreter string, timeout time.Duration) domain.RunResult
}

// Clipboard provides cross-platform clipboard integration for copying output.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// ConfirmationPrompter asks the user before destructive operations.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
