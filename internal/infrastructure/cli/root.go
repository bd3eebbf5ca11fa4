package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/pyrun/internal/app"
	"github.com/doeshing/pyrun/internal/infrastructure/cli/commands"
	"github.com/doeshing/pyrun/internal/pkg/logger"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The returned container must be
// closed by the caller once the command has run.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *app.Container, error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose, ConfigPath: opts.ConfigPath})
	if err != nil {
		return nil, nil, err
	}
	return NewRootCmdWithContainer(container), container, nil
}

// NewRootCmdWithContainer builds the command tree around an existing container.
func NewRootCmdWithContainer(container *app.Container) *cobra.Command {
	if container.Prompter == nil {
		container.Prompter = NewPrompter(nil, nil)
	}
	if container.Clipboard == nil {
		container.Clipboard = NewClipboard()
	}
	if container.Launcher != nil {
		container.Launcher.Clipboard = container.Clipboard
	}
	if container.DoctorService != nil {
		container.DoctorService.Clipboard = container.Clipboard
	}

	runCmd := commands.NewRunCommand(container)
	var verbose bool

	root := &cobra.Command{
		Use:   "pyrun [code]",
		Short: "pyrun - run Python snippets and recall them later",
		Long:  "pyrun executes short Python snippets with a time limit and keeps the last 50 in history.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			runCmd.SetContext(cmd.Context())
			runCmd.SetIn(cmd.InOrStdin())
			runCmd.SetOut(cmd.OutOrStdout())
			runCmd.SetErr(cmd.ErrOrStderr())
			return runCmd.RunE(runCmd, args)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if l, ok := container.Logger.(*logger.StdLogger); ok && verbose {
				l.SetVerbose(true)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(runCmd)
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
