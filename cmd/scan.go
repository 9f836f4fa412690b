package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	scanrender "github.com/bnema/gamectl/internal/adapters/render/scan"
	"github.com/bnema/gamectl/internal/domain"
	"github.com/spf13/cobra"
)

func newScanCmd(app *app) *cobra.Command {
	var (
		game    string
		channel int
		drives  []string
		save    bool
		pick    bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan fixed drives for installations of a game and verify them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			gameID := domain.GameID(game)
			if _, err := app.backend.Games().Lookup(gameID); err != nil {
				return err
			}

			targets := drives
			if len(targets) == 0 {
				fixed, err := app.discovery.ListFixedDrives(ctx)
				if err != nil {
					return err
				}
				for _, drive := range fixed {
					targets = append(targets, drive.Letter)
				}
			}

			var found []string
			for _, drive := range targets {
				paths, err := scanDrive(ctx, app, cmd.OutOrStdout(), drive, gameID, domain.Channel(channel))
				if err != nil {
					return err
				}
				found = append(found, paths...)
			}

			if len(found) == 0 {
				if !pick || !interactive(cmd.InOrStdin(), cmd.OutOrStdout()) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No installation of %s found.\n", gameID)
					return nil
				}
				folder, err := pickFolder(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Select the %s installation folder", gameID))
				if err != nil {
					return err
				}
				found = []string{folder}
			}

			session := app.verifier.Verify(ctx, found, func(result domain.PathCheckResult) {
				if !result.IsChecking {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), scanrender.ResultLine(result))
				}
			})
			results := session.Results()

			rendered, err := app.resultsRenderer(gameID, results)
			if err != nil {
				return fmt.Errorf("render results: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			if save {
				return saveVerified(ctx, app, cmd.OutOrStdout(), cmd.ErrOrStderr(), gameID, results)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game id to look for (hk4e, hkrpg, nap, bh3)")
	cmd.Flags().IntVar(&channel, "channel", 1, "Release channel whose executable is searched")
	cmd.Flags().StringSliceVar(&drives, "drive", nil, "Drive or directory to scan (default: every fixed drive)")
	cmd.Flags().BoolVar(&save, "save", false, "Remember every verified installation")
	cmd.Flags().BoolVar(&pick, "pick", true, "Offer a folder picker when nothing is found")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func scanDrive(ctx context.Context, app *app, out io.Writer, drive string, game domain.GameID, channel domain.Channel) ([]string, error) {
	scan := func(ctx context.Context, onProgress func(domain.ScanProgress)) ([]string, error) {
		return app.discovery.Scan(ctx, drive, game, channel, onProgress)
	}

	if !isTerminal(out) {
		return scan(ctx, nil)
	}
	return runScanSpinner(ctx, out, fmt.Sprintf("Scanning %s...", drive), scan)
}

// saveVerified records the installations the catalog recognised for game.
func saveVerified(ctx context.Context, app *app, out, errOut io.Writer, game domain.GameID, results []domain.PathCheckResult) error {
	saved := 0
	for _, result := range results {
		if result.Outcome == nil || !result.Outcome.Supported() || result.Outcome.Game != game {
			continue
		}
		outcome := result.Outcome
		launch := domain.LaunchContext{Game: game, Version: outcome.Version, Channel: outcome.Channel}
		if err := warnLegacyNarrowing(ctx, app, errOut, launch, false); err != nil {
			return err
		}
		if err := app.paths.Set(ctx, game, outcome.Version, outcome.Channel, result.Path); err != nil {
			return err
		}
		saved++
		_, _ = fmt.Fprintf(out, "Saved %s %s channel %d: %s\n", game, outcome.Version, outcome.Channel, result.Path)
	}

	if saved == 0 {
		return errors.New("no verified installation to save")
	}
	return nil
}
