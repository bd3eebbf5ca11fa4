package config

import (
	"testing"

	"github.com/doeshing/pyrun/internal/domain"
)

func TestValidate(t *testing.T) {
	valid := domain.Config{
		Interpreter: domain.InterpreterSettings{TimeoutSeconds: 10},
		Storage:     domain.StorageSettings{Backend: domain.StorageSQLite},
	}
	if err := Validate(valid); err != nil {
		t.Fatalf("Validate(valid) error = %v", err)
	}

	tests := map[string]func(*domain.Config){
		"zero timeout":     func(c *domain.Config) { c.Interpreter.TimeoutSeconds = 0 },
		"padded path":      func(c *domain.Config) { c.Interpreter.Path = " python3" },
		"unknown backend":  func(c *domain.Config) { c.Storage.Backend = "redis" },
		"empty backend":    func(c *domain.Config) { c.Storage.Backend = "" },
		"negative timeout": func(c *domain.Config) { c.Interpreter.TimeoutSeconds = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
