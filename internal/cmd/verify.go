package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/config"
	"github.com/harrison/repoaudit/internal/ignore"
	"github.com/harrison/repoaudit/internal/reconcile"
	"github.com/harrison/repoaudit/internal/scanner"
	"github.com/harrison/repoaudit/internal/structdoc"
)

// NewVerifyCommand creates and returns the verify subcommand
func NewVerifyCommand() *cobra.Command {
	var root string
	var docPath string
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the project structure with structure.md",
		Long: `Scan the project tree, parse the tree diagram in structure.md's fenced
code block, and report paths present in one but missing from the other.

Both scans apply the same fixed ignore rules (directory names, file names,
extensions, regex patterns). Differences are reported through the printed
text; the command terminates normally whether or not the two sets match.
A missing documentation file or a documentation file without a fenced code
block is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watchMode {
				return verifyWithOutput(root, docPath, cmd.OutOrStdout())
			}

			cfg, err := config.Load(config.DefaultFileName)
			if err != nil {
				return err
			}
			return watchVerify(cmd, root, docPath, cfg)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root to scan")
	cmd.Flags().StringVar(&docPath, "doc", "structure.md", "documentation file containing the tree diagram")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "re-run verification whenever the project tree changes")

	return cmd
}

// verifyWithOutput runs one reconciliation pass and prints the report.
// A structure mismatch is not an error; only unreadable inputs are.
func verifyWithOutput(root, docPath string, out io.Writer) error {
	rules := ignore.Default()

	fmt.Fprintf(out, "Scanning project files in: %s\n", root)
	result, err := scanner.Scan(root, rules)
	if err != nil {
		return err
	}
	for _, scanErr := range result.Errors {
		fmt.Fprintf(out, "  (skipped) %v\n", scanErr)
	}

	fmt.Fprintf(out, "Parsing documentation file: %s\n", docPath)
	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read documentation file: %w", err)
	}
	documented, err := structdoc.Parse(data, rules)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", docPath, err)
	}

	reconcile.Diff(result.Paths, documented).Write(out)
	return nil
}
