package cli

import (
	"github.com/runoshun/freewipe/internal/app"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/spf13/cobra"
)

// newDrivesCommand creates the drives command.
func newDrivesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List the drives a sweep would visit",
		Long: `List the drive roots present on this machine, in the order a sweep visits
them. Kind and free space are shown when the OS reports them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			letters, err := parseDriveLetters(c.AppConfig.Wipe.Drives)
			if err != nil {
				return err
			}

			out, err := c.ListDrivesUseCase().Execute(cmd.Context(), usecase.ListDrivesInput{Letters: letters})
			if err != nil {
				return err
			}

			p := c.Presenter(cmd.OutOrStdout())
			p.Drives(out.Drives)
			return nil
		},
	}
}
