package domain

import "time"

// Config mirrors ~/.pyrun/config.yaml.
type Config struct {
	ConfigFormatVersion string              `yaml:"config_format_version"`
	Interpreter         InterpreterSettings `yaml:"interpreter"`
	Storage             StorageSettings     `yaml:"storage"`
}

// InterpreterSettings controls how snippets are executed.
type InterpreterSettings struct {
	Path           string `yaml:"path"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// StorageSettings selects the key-value backend holding the history log.
type StorageSettings struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// InterpreterPath returns the configured interpreter or the default command.
func (c Config) InterpreterPath() string {
	if c.Interpreter.Path != "" {
		return c.Interpreter.Path
	}
	return DefaultInterpreter
}

// Timeout returns the run timeout, falling back to DefaultRunTimeout.
func (c Config) Timeout() time.Duration {
	if c.Interpreter.TimeoutSeconds <= 0 {
		return DefaultRunTimeout
	}
	return time.Duration(c.Interpreter.TimeoutSeconds) * time.Second
}
