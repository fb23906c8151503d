package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/commits"
	"github.com/harrison/repoaudit/internal/display"
)

// NewCommitsCommand creates and returns the commits subcommand
func NewCommitsCommand() *cobra.Command {
	var reviewPath string
	var logPath string

	cmd := &cobra.Command{
		Use:   "commits",
		Short: "Extract push-log sections for probability-flagged commits",
		Long: `Read the review file for commits flagged as Medium, High, or Very High
probability, then print the sections of the push log that mention those
commit hashes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commitsWithOutput(reviewPath, logPath, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&reviewPath, "review", "potential.md", "review file with probability-flagged commits")
	cmd.Flags().StringVar(&logPath, "log", "pushes.md", "push log with sections separated by --- lines")

	return cmd
}

func commitsWithOutput(reviewPath, logPath string, out io.Writer) error {
	review, err := os.ReadFile(reviewPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", reviewPath, err)
	}
	pushLog, err := os.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", logPath, err)
	}

	extracted, found := commits.Extract(string(review), string(pushLog))
	if !found {
		fmt.Fprintf(out, "No medium or high potential commits found in %s\n", reviewPath)
		return nil
	}
	if extracted == "" {
		display.Warning{
			Title:      "No matching commit details found",
			Message:    fmt.Sprintf("Commits were flagged in %s but none of their hashes appear in %s.", reviewPath, logPath),
			Suggestion: "Check that both files cover the same date range.",
		}.Display(out)
		return nil
	}

	fmt.Fprintln(out, extracted)
	return nil
}
