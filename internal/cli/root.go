// Package cli provides the command-line interface for freewipe.
package cli

import (
	"fmt"

	"github.com/runoshun/freewipe/internal/app"
	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupWipe  = "wipe"
	groupSetup = "setup"
)

// elevationHint is appended to errors caused by missing permissions.
const elevationHint = "hint: run freewipe from an elevated (Administrator) prompt"

// sweepFlags holds the root command flags.
// Fields are ordered to minimize memory padding.
type sweepFlags struct {
	drives      []string
	logLevel    string
	passes      int
	dryRun      bool
	noPause     bool
	keepArchive bool
}

// NewRootCommand creates the root command for freewipe.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var flags sweepFlags

	root := &cobra.Command{
		Use:   "freewipe",
		Short: "Wipe the free space of every drive with SDelete",
		Long: `freewipe overwrites the free space of every drive on this machine so that
deleted files cannot be recovered.

It downloads Sysinternals SDelete into your profile directory when it is
missing, then runs it once per drive (A: to Z:) in letter order. A drive
that fails is reported and the sweep moves on to the next one.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			if flags.logLevel != "" {
				c.AppConfig.Log.Level = flags.logLevel
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, c, &flags)
		},
	}

	root.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the SDelete commands without running them")
	root.Flags().BoolVar(&flags.noPause, "no-pause", false, "Exit without waiting for Enter")
	root.Flags().StringArrayVarP(&flags.drives, "drive", "d", nil, "Only wipe this drive letter (repeatable)")
	root.Flags().IntVar(&flags.passes, "passes", domain.DefaultPasses, "Number of overwrite passes")
	root.Flags().BoolVar(&flags.keepArchive, "keep-archive", false, "Keep SDelete.zip after extraction")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupWipe, Title: "Wipe Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	drivesCmd := newDrivesCommand(c)
	drivesCmd.GroupID = groupWipe

	reportCmd := newReportCommand(c)
	reportCmd.GroupID = groupWipe

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupWipe

	fetchCmd := newFetchCommand(c)
	fetchCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(drivesCmd, reportCmd, logsCmd, fetchCmd, configCmd)

	return root
}

// runSweep merges the flags into the loaded configuration and runs the sweep.
func runSweep(cmd *cobra.Command, c *app.Container, flags *sweepFlags) error {
	cfg := c.AppConfig
	if cmd.Flags().Changed("passes") {
		cfg.Wipe.Passes = flags.passes
	}
	if cmd.Flags().Changed("drive") {
		cfg.Wipe.Drives = flags.drives
	}
	if flags.keepArchive {
		cfg.Tool.KeepArchive = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	letters, err := parseDriveLetters(cfg.Wipe.Drives)
	if err != nil {
		return err
	}

	// A dry run leaves nothing behind in the tool directory.
	if flags.dryRun {
		c.DisableFileLog()
	}
	defer func() { _ = c.Close() }()

	uc := c.SweepUseCase(cmd.InOrStdin(), cmd.OutOrStdout())
	_, err = uc.Execute(cmd.Context(), usecase.SweepInput{
		Paths:       c.ToolPaths(),
		URL:         cfg.Tool.URL,
		Letters:     letters,
		Passes:      cfg.Wipe.Passes,
		KeepArchive: cfg.Tool.KeepArchive,
		DryRun:      flags.dryRun,
		Pause:       cfg.PauseEnabled() && !flags.noPause,
	})
	return withHint(err)
}

// parseDriveLetters converts drive arguments such as "C", "d:" or `E:\` to letters.
func parseDriveLetters(args []string) ([]byte, error) {
	letters := make([]byte, 0, len(args))
	for _, a := range args {
		l, err := domain.ParseDriveLetter(a)
		if err != nil {
			return nil, err
		}
		letters = append(letters, l)
	}
	return letters, nil
}

// withHint adds the elevation hint to permission errors.
func withHint(err error) error {
	if err == nil || !domain.IsPermission(err) {
		return err
	}
	return fmt.Errorf("%w\n%s", err, elevationHint)
}
