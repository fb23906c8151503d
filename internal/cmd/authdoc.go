package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/repoaudit/internal/authdoc"
	"github.com/harrison/repoaudit/internal/config"
	"github.com/harrison/repoaudit/internal/display"
)

// NewAuthDocCommand creates and returns the authdoc subcommand
func NewAuthDocCommand() *cobra.Command {
	var root string
	var output string

	cmd := &cobra.Command{
		Use:   "authdoc",
		Short: "Generate the authentication files documentation",
		Long: `Assemble auth-files-documentation.md from the configured list of
authentication-related source files, together with per-page notes on how
authentication is used. Files that cannot be read are documented with the
read error in their place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultFileName)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.AuthDocOutput
			}
			return authDocWithOutput(root, output, cfg, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root the auth file paths are relative to")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default from config)")

	return cmd
}

func authDocWithOutput(root, output string, cfg *config.Config, out io.Writer) error {
	files := cfg.AuthFiles
	if len(files) == 0 {
		files = authdoc.DefaultFiles()
	}

	g := &authdoc.Generator{
		Root:        root,
		Files:       files,
		PageDetails: authdoc.DefaultPageDetails(),
	}

	fmt.Fprintf(out, "Collecting %d authentication files:\n", len(files))
	progress := display.NewProgressIndicator(out, len(files))
	doc := g.Generate(progress.Step)

	if err := authdoc.Write(output, doc); err != nil {
		return fmt.Errorf("failed to write documentation: %w", err)
	}
	progress.Complete(fmt.Sprintf("Documentation has been saved to %s", output))
	return nil
}
