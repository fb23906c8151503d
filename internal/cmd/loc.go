package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/config"
	"github.com/harrison/repoaudit/internal/loc"
)

// NewLocCommand creates and returns the loc subcommand
func NewLocCommand() *cobra.Command {
	var root string
	var save bool
	var history bool
	var limit int

	cmd := &cobra.Command{
		Use:   "loc",
		Short: "Estimate lines of code across the project's source files",
		Long: `Count non-empty lines that do not start with a single-line comment
marker (#, //) across the configured source extensions. Multi-line comments
are not specifically handled by this simple heuristic.

With --save the result is recorded in the local history database; --history
lists previous runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultFileName)
			if err != nil {
				return err
			}
			if history {
				return locHistoryWithOutput(cmd.Context(), cfg, limit, cmd.OutOrStdout())
			}
			return locWithOutput(cmd.Context(), root, cfg, save, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root to scan")
	cmd.Flags().BoolVar(&save, "save", false, "record this count in the history database")
	cmd.Flags().BoolVar(&history, "history", false, "list previous recorded counts")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of history entries to list")

	return cmd
}

func locWithOutput(ctx context.Context, root string, cfg *config.Config, save bool, out io.Writer) error {
	opts := loc.DefaultOptions(cfg.LocExtensions)

	fmt.Fprintf(out, "Starting line count in %s...\n", root)
	summary, err := loc.Count(root, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total estimated lines of code (LoC): %d\n", summary.TotalLines)
	fmt.Fprintf(out, "Counted across %d files.\n", summary.FileCount)
	if len(summary.Errors) > 0 {
		fmt.Fprintf(out, "Encountered errors processing %d file(s).\n", len(summary.Errors))
	}

	if save {
		store, err := loc.NewHistoryStore(cfg.LocHistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Record(ctx, root, summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded run %s in %s.\n", id, cfg.LocHistoryPath)
	}

	return nil
}

func locHistoryWithOutput(ctx context.Context, cfg *config.Config, limit int, out io.Writer) error {
	store, err := loc.NewHistoryStore(cfg.LocHistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs. Use 'repoaudit loc --save' to record one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(out, "%s  %6d lines  %4d files  %s  (%s)\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.TotalLines, r.FileCount, r.Root, r.ID)
	}
	return nil
}
