package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for config and data files (rw-------)
	SecureFilePermissions = 0o600
)

// History constants
const (
	// HistoryKey is the key-value slot holding the serialized history log
	HistoryKey = "python-history"
	// MaxEntries caps the history log; older entries are dropped on insert
	MaxEntries = 50
	// MaxTitleRunes is how much of an entry's first line is shown in listings
	MaxTitleRunes = 80
)

// Execution constants
const (
	// DefaultInterpreter is used when no interpreter path is configured
	DefaultInterpreter = "python3"
	// InlineProgramFlag tells the interpreter to run the next argument as a program
	InlineProgramFlag = "-c"
	// DefaultRunTimeout bounds a single interpreter invocation
	DefaultRunTimeout = 10 * time.Second
	// DefaultTimeoutSeconds is DefaultRunTimeout expressed for the config file
	DefaultTimeoutSeconds = 10
	// KillGracePeriod bounds how long we wait for pipes to drain after a kill
	KillGracePeriod = 500 * time.Millisecond
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)
