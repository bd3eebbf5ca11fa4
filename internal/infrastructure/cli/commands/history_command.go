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

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and rerun previously executed snippets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.Context(), cmd.OutOrStdout(), container, DefaultHistoryLimit)
		},
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryShowCommand(container),
		newHistoryRunCommand(container),
		newHistoryCopyCommand(container),
		newHistoryDeleteCommand(container),
		newHistoryClearCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.Context(), cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

// newHistoryShowCommand creates the 'history show' subcommand
func newHistoryShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the full code of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupEntry(cmd.Context(), container, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), entry.Code)
			if entry.Code != "" && entry.Code[len(entry.Code)-1] != '\n' {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

// newHistoryRunCommand creates the 'history run' subcommand
func newHistoryRunCommand(container *app.Container) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Run an entry again without re-recording it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Launcher == nil {
				return errors.New(ErrLauncherUnavailable)
			}
			ts, err := helpers.ParseTimestamp(args[0])
			if err != nil {
				return err
			}
			req := flags.request()
			return runWithSpinner(cmd, func(ctx context.Context) (domain.RunResult, error) {
				return container.Launcher.Rerun(ctx, ts, req)
			})
		},
	}

	flags.register(cmd)
	return cmd
}

// newHistoryCopyCommand creates the 'history copy' subcommand
func newHistoryCopyCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy an entry's code to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Clipboard == nil || !container.Clipboard.Enabled() {
				return errors.New(ErrClipboardUnavailable)
			}
			entry, err := lookupEntry(cmd.Context(), container, args[0])
			if err != nil {
				return err
			}
			if err := container.Clipboard.Copy(entry.Code); err != nil {
				return fmt.Errorf("failed to copy code: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), MsgCopied)
			return nil
		},
	}
}

// newHistoryDeleteCommand creates the 'history delete' subcommand
func newHistoryDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an entry from history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Launcher == nil {
				return errors.New(ErrLauncherUnavailable)
			}
			ts, err := helpers.ParseTimestamp(args[0])
			if err != nil {
				return err
			}
			if err := container.Launcher.Delete(cmd.Context(), ts); err != nil {
				return fmt.Errorf("failed to remove entry: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), MsgEntryRemoved)
			return nil
		},
	}
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearHistory(cmd.Context(), cmd.ErrOrStderr(), container, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// listHistoryEntries prints one row per entry
func listHistoryEntries(ctx context.Context, out io.Writer, container *app.Container, limit int) error {
	if container.Launcher == nil {
		return errors.New(ErrLauncherUnavailable)
	}

	entries, err := container.Launcher.Entries(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistory)
		return nil
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	now := time.Now()
	for _, entry := range entries {
		fmt.Fprintln(out, helpers.FormatEntryRow(entry, now))
	}
	return nil
}

// clearHistory empties the log after confirmation
func clearHistory(ctx context.Context, out io.Writer, container *app.Container, skipConfirm bool) error {
	if container.Launcher == nil {
		return errors.New(ErrLauncherUnavailable)
	}

	if !skipConfirm {
		if container.Prompter == nil {
			return fmt.Errorf("refusing to clear history without confirmation; pass --yes")
		}
		confirmed, err := container.Prompter.Confirm("This will remove all history entries. This cannot be undone. Clear all?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, MsgClearCancelled)
			return nil
		}
	}

	if err := container.Launcher.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(out, MsgHistoryCleared)
	return nil
}

func lookupEntry(ctx context.Context, container *app.Container, arg string) (domain.HistoryEntry, error) {
	if container.Launcher == nil {
		return domain.HistoryEntry{}, errors.New(ErrLauncherUnavailable)
	}
	ts, err := helpers.ParseTimestamp(arg)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return container.Launcher.Entry(ctx, ts)
}
