package cli

import (
	"github.com/runoshun/freewipe/internal/app"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/spf13/cobra"
)

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the result of the last sweep",
		Long: `Show the report written at the end of the last sweep: when it ran,
which drives were visited and how each one ended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowReportUseCase().Execute(cmd.Context(), usecase.ShowReportInput{})
			if err != nil {
				return err
			}

			c.Presenter(cmd.OutOrStdout()).Report(out.Report)
			return nil
		},
	}
}
