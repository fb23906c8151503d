package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for repoaudit
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repoaudit",
		Short: "Developer utilities for auditing a web application codebase",
		Long: `Repoaudit bundles the small maintenance utilities used on this codebase:
verifying structure.md against the real project tree, regenerating the tree
diagram, peeking into files, counting lines of code, generating the
authentication file documentation, cross-referencing flagged commits, and
grepping for red color usages.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				color.NoColor = true
			}
		},
	}

	// Add subcommands
	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewTreeCommand())
	cmd.AddCommand(NewPeekCommand())
	cmd.AddCommand(NewLocCommand())
	cmd.AddCommand(NewAuthDocCommand())
	cmd.AddCommand(NewCommitsCommand())
	cmd.AddCommand(NewColorsCommand())

	return cmd
}
