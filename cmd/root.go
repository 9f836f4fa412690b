package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "gamectl",
		Short:         "gamectl: find, verify and launch game installations",
		Long:          "gamectl scans fixed drives for game installations, verifies them against the patch catalog, remembers install paths per version and channel, and launches games behind the advisory and certificate checks.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if logLevel == "" {
			return nil
		}
		return setLogLevel(app.logLevel, logLevel)
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDrivesCmd(app),
		newScanCmd(app),
		newPathCmd(app),
		newLaunchCmd(app),
		newStopCmd(app),
		newHistoryCmd(app),
		newPrefsCmd(app),
		newAdvisoryCmd(app),
	)

	return rootCmd
}
