package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/config"
	"github.com/harrison/repoaudit/internal/ignore"
	"github.com/harrison/repoaudit/internal/peek"
)

// NewPeekCommand creates and returns the peek subcommand
func NewPeekCommand() *cobra.Command {
	var root string
	var lines int

	cmd := &cobra.Command{
		Use:   "peek",
		Short: "Print the first N lines of every non-ignored project file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultFileName)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lines") {
				lines = cfg.PeekLines
			}
			return peekWithOutput(root, lines, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root to scan")
	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "number of lines to print per file")

	return cmd
}

func peekWithOutput(root string, lines int, out io.Writer) error {
	if lines <= 0 {
		return fmt.Errorf("number of lines must be positive, got %d", lines)
	}

	fmt.Fprintf(out, "Peeking into first %d lines of files under %s...\n", lines, root)
	_, err := peek.Files(root, lines, ignore.Default(), out)
	return err
}
