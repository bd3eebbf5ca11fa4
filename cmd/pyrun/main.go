package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/pyrun/internal/infrastructure/cli"
	"github.com/doeshing/pyrun/internal/infrastructure/cli/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, container, err := cli.NewRootCmd(ctx, cli.Options{Verbose: isVerbose()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer container.Close()

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, commands.ErrRunFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("PYRUN_DEBUG"), "1") || strings.EqualFold(os.Getenv("PYRUN_DEBUG"), "true")
}
