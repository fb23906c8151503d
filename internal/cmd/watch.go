package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/config"
	"github.com/harrison/repoaudit/internal/ignore"
	"github.com/harrison/repoaudit/internal/watch"
)

// watchVerify runs verification once, then re-runs it after every debounced
// change to the project tree until the command context is cancelled.
func watchVerify(cmd *cobra.Command, root, docPath string, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	runOnce := func() {
		if err := verifyWithOutput(root, docPath, out); err != nil {
			fmt.Fprintf(out, "✗ %v\n", err)
		}
		fmt.Fprintf(out, "\nWatching %s for changes...\n", root)
	}
	runOnce()

	return watch.Run(root, ignore.Default(), cfg.WatchDebounce, cmd.Context().Done(), runOnce)
}
