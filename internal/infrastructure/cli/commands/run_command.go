package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/pyrun/internal/app"
	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/infrastructure/cli/helpers"
)

// runFlags are shared by `run` and `history run`.
type runFlags struct {
	interpreter string
	timeout     time.Duration
	copyOutput  bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.interpreter, "interpreter", "i", "", "Interpreter executable (default from config, then python3)")
	cmd.Flags().DurationVarP(&f.timeout, "timeout", "t", 0, "Kill the snippet after this long (default from config)")
	cmd.Flags().BoolVarP(&f.copyOutput, "copy", "c", false, "Copy the output to the clipboard")
}

func (f *runFlags) request() domain.RunRequest {
	return domain.RunRequest{
		InterpreterOverride: f.interpreter,
		TimeoutOverride:     f.timeout,
		CopyOutput:          f.copyOutput,
	}
}

// NewRunCommand creates the run command
func NewRunCommand(container *app.Container) *cobra.Command {
	var (
		flags     runFlags
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "run [code]",
		Short: "Run a Python snippet and record it in history",
		Long:  "Run a Python snippet with `python -c`. With no arguments (or \"-\") the code is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := helpers.ReadCode(args, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read code: %w", err)
			}
			req := flags.request()
			req.Code = code
			req.SkipHistory = noHistory
			return submitAndRender(cmd, container, req)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the snippet in history")
	return cmd
}

func submitAndRender(cmd *cobra.Command, container *app.Container, req domain.RunRequest) error {
	if container.Launcher == nil {
		return errors.New(ErrLauncherUnavailable)
	}
	return runWithSpinner(cmd, func(ctx context.Context) (domain.RunResult, error) {
		return container.Launcher.Submit(ctx, req)
	})
}

// runWithSpinner animates on an interactive stderr while run executes, then
// renders the result to stdout and the status line to stderr.
func runWithSpinner(cmd *cobra.Command, run func(context.Context) (domain.RunResult, error)) error {
	errOut := cmd.ErrOrStderr()
	var spinner *helpers.Spinner
	if helpers.Interactive(errOut) {
		spinner = helpers.NewSpinner(errOut, MsgRunning)
		spinner.Start()
	}

	result, err := run(cmd.Context())
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	return renderOutcome(cmd.OutOrStdout(), errOut, result)
}

func renderOutcome(out, errOut io.Writer, result domain.RunResult) error {
	RenderResult(out, result)
	RenderStatus(errOut, result)
	if result.Failed() {
		return ErrRunFailed
	}
	return nil
}
