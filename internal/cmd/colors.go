package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/colors"
	"github.com/harrison/repoaudit/internal/display"
)

// NewColorsCommand creates and returns the colors subcommand
func NewColorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors [search-root]",
		Short: "Find red color usages in frontend source files",
		Long: `Grep .ts/.tsx/.js/.jsx/.css/.scss/.html files for red Tailwind classes
(bg-red-*, text-red-*, border-red-*, ring-red-*) and raw red hex values.
Defaults to searching under src.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "src"
			if len(args) == 1 {
				root = args[0]
			}
			return colorsWithOutput(root, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

func colorsWithOutput(root string, out io.Writer) error {
	matches, errs, err := colors.Find(root)
	if err != nil {
		return err
	}

	for _, m := range matches {
		fmt.Fprintf(out, "%s:%d: %s\n", m.Path, m.Line, m.Text)
	}
	if len(errs) > 0 {
		display.Warning{
			Title:   fmt.Sprintf("Skipped %d unreadable file(s)", len(errs)),
			Message: errs[0].Error(),
		}.Display(out)
	}

	fmt.Fprintf(out, "\nTotal matches found: %d\n", len(matches))
	return nil
}
