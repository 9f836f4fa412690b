package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/spf13/cobra"
)

func newStopCmd(app *app) *cobra.Command {
	var game string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a game started by gamectl and its proxy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			gameID := domain.GameID(game)
			if _, err := app.backend.Games().Lookup(gameID); err != nil {
				return err
			}

			var stopErr error
			if err := app.backend.ForceStopGameMonitor(ctx); err != nil {
				stopErr = errors.Join(stopErr, err)
			}
			if err := app.backend.StopGame(ctx, gameID); err != nil {
				stopErr = errors.Join(stopErr, err)
			}
			if err := app.backend.StopProxy(ctx); err != nil {
				stopErr = errors.Join(stopErr, fmt.Errorf("stop proxy: %w", err))
			}

			if err := finishActiveSessions(cmd, app, gameID); err != nil {
				app.logger.Warn("close session history failed", "game", gameID, "err", err)
			}
			if stopErr != nil {
				return stopErr
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s\n", gameID)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game id to stop")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

// finishActiveSessions closes history entries left open by a detached launch.
func finishActiveSessions(cmd *cobra.Command, app *app, game domain.GameID) error {
	sessions, err := app.history.Sessions().Recent(cmd.Context(), 0)
	if err != nil {
		return err
	}

	var finishErr error
	for _, session := range sessions {
		if session.Launch.Game != game || !session.Active() {
			continue
		}
		if err := app.history.Sessions().Finish(cmd.Context(), session.ID, app.now(), domain.SessionEndStopped); err != nil {
			finishErr = errors.Join(finishErr, err)
		}
	}
	return finishErr
}
