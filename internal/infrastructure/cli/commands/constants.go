package commands

import "errors"

// ErrRunFailed marks a run whose result was rendered as a failure.
// main maps it to exit status 1 without printing anything further.
var ErrRunFailed = errors.New("execution finished with errors")

// Defaults for history listings
const (
	// DefaultHistoryLimit is the default number of entries `history list` prints
	DefaultHistoryLimit = 20
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrLauncherUnavailable      = "launcher unavailable"
	ErrClipboardUnavailable     = "clipboard unavailable"
)

// Status messages
const (
	MsgRunning                  = "Running Python..."
	MsgExecutionComplete        = "Execution complete"
	MsgExecutionFailed          = "Execution finished with errors"
	MsgNoOutput                 = "(no output)"
	MsgNoHistory                = "No history. Run some Python code to see it here."
	MsgEntryRemoved             = "Entry removed"
	MsgHistoryCleared           = "History cleared"
	MsgClearCancelled           = "Clear cancelled."
	MsgCopied                   = "Copied to clipboard"
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)
