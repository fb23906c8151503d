package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/ignore"
	"github.com/harrison/repoaudit/internal/scanner"
	"github.com/harrison/repoaudit/internal/structdoc"
)

// NewTreeCommand creates and returns the tree subcommand
func NewTreeCommand() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the scanned project tree as a structure.md diagram",
		Long: `Scan the project with the same ignore rules verify uses and print the
result as an indented tree diagram. Paste the output into structure.md's
fenced code block to bring the documentation up to date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return treeWithOutput(root, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root to scan")

	return cmd
}

func treeWithOutput(root string, out io.Writer) error {
	result, err := scanner.Scan(root, ignore.Default())
	if err != nil {
		return err
	}
	fmt.Fprint(out, structdoc.RenderTree(result.Sorted()))
	return nil
}
