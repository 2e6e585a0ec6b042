package cli

import (
	"fmt"

	"github.com/runoshun/freewipe/internal/app"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/spf13/cobra"
)

// newFetchCommand creates the fetch command.
func newFetchCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract SDelete without wiping",
		Long: `Download SDelete.zip and extract it into the tool directory.

Nothing is downloaded when sdelete.exe is already present, unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = c.Close() }()

			cfg := c.AppConfig
			out, err := c.PrepareToolUseCase(cmd.OutOrStdout()).Execute(cmd.Context(), usecase.PrepareToolInput{
				Paths:       c.ToolPaths(),
				URL:         cfg.Tool.URL,
				KeepArchive: cfg.Tool.KeepArchive,
				Force:       force,
			})
			if err != nil {
				return withHint(err)
			}

			if !out.Downloaded {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "SDelete is already installed: %s\n", out.Executable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Download even if sdelete.exe exists")

	return cmd
}
