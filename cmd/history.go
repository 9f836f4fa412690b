package cmd

import (
	"encoding/json"
	"fmt"

	scanrender "github.com/bnema/gamectl/internal/adapters/render/scan"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent game sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := app.history.Sessions().Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sessions)
			}

			games, err := app.history.Games().List(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.historyRenderer(sessions, games, scanrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of sessions to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sessions as JSON")
	return cmd
}
