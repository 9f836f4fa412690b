package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdvisoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advisory",
		Short: "Inspect launch advisories",
	}

	cmd.AddCommand(
		newAdvisoryShowCmd(app),
		newAdvisoryCheckCmd(app),
		&cobra.Command{
			Use:   "clear",
			Short: "Show suppressed advisories again",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.preferences.ClearSuppressedAdvisory(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Advisory suppression cleared")
				return err
			},
		},
	)

	return cmd
}

func newAdvisoryShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the advisory suppressed until midnight, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suppressed, ok, err := app.preferences.SuppressedAdvisory(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No advisory is suppressed")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Suppressed until %s:\n%s\n", suppressed.ExpiresAt.Format("2006-01-02 15:04"), suppressed.Message)
			return err
		},
	}
}

func newAdvisoryCheckCmd(app *app) *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fetch the advisory shown before launching a game",
		RunE: func(cmd *cobra.Command, _ []string) error {
			launch, err := flags.launch()
			if err != nil {
				return err
			}

			advisory, err := app.catalog.PatchMessage(cmd.Context(), launch)
			if err != nil {
				return err
			}
			if !advisory.Present() {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No advisory for %s\n", launch)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), advisory.Message)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
