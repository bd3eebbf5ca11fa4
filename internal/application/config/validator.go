package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/pyrun/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateInterpreter(cfg.Interpreter); err != nil {
		return err
	}
	return validateStorage(cfg.Storage)
}

func validateInterpreter(in domain.InterpreterSettings) error {
	if in.TimeoutSeconds <= 0 {
		return fmt.Errorf("interpreter.timeout must be > 0, got %d", in.TimeoutSeconds)
	}
	if strings.TrimSpace(in.Path) != in.Path {
		return fmt.Errorf("interpreter.path must not have surrounding whitespace")
	}
	return nil
}

func validateStorage(st domain.StorageSettings) error {
	switch st.Backend {
	case domain.StorageSQLite, domain.StorageFile, domain.StorageMemory:
		return nil
	default:
		return fmt.Errorf("storage.backend must be %s|%s|%s, got %q",
			domain.StorageSQLite, domain.StorageFile, domain.StorageMemory, st.Backend)
	}
}
