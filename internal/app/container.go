package app

import (
	"context"
	"io"

	"github.com/doeshing/pyrun/internal/application/doctor"
	"github.com/doeshing/pyrun/internal/application/launcher"
	"github.com/doeshing/pyrun/internal/infrastructure/config"
	"github.com/doeshing/pyrun/internal/infrastructure/executor"
	"github.com/doeshing/pyrun/internal/infrastructure/history"
	"github.com/doeshing/pyrun/internal/infrastructure/kv"
	"github.com/doeshing/pyrun/internal/pkg/logger"
	"github.com/doeshing/pyrun/internal/ports"
)

// Options tunes container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Launcher       *launcher.Service
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	DoctorService  *doctor.Service
	HistoryStore   ports.HistoryStore
	Logger         ports.Logger

	// Set by the CLI layer, which owns the terminal.
	Prompter  ports.ConfirmationPrompter
	Clipboard ports.Clipboard

	storage io.Closer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)

	backend, closer, err := kv.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}
	historyStore := history.NewStore(backend, history.WithLogger(log))

	launcherService := &launcher.Service{
		ConfigProvider: cfgLoader,
		History:        historyStore,
		Runner:         executor.NewLocalRunner(log),
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		History:        historyStore,
	}

	return &Container{
		Launcher:       launcherService,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		DoctorService:  doctorService,
		HistoryStore:   historyStore,
		Logger:         log,
		storage:        closer,
	}, nil
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if c.storage == nil {
		return nil
	}
	return c.storage.Close()
}
