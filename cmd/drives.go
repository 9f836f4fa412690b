package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newDrivesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "drives",
		Short: "List fixed drives that can be scanned",
		RunE: func(cmd *cobra.Command, _ []string) error {
			drives, err := app.discovery.ListFixedDrives(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(drives)
			}

			rendered, err := app.drivesRenderer(drives)
			if err != nil {
				return fmt.Errorf("render drives: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print drives as JSON")
	return cmd
}
