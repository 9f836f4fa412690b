package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/spf13/cobra"
)

type launchFlags struct {
	game    string
	version string
	channel int
}

func (f *launchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.game, "game", "", "Game id (hk4e, hkrpg, nap, bh3)")
	cmd.Flags().StringVar(&f.version, "version", "", "Game version, for example 5.0.0")
	cmd.Flags().IntVar(&f.channel, "channel", 1, "Release channel")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("version")
}

func (f launchFlags) launch() (domain.LaunchContext, error) {
	launch := domain.LaunchContext{
		Game:    domain.GameID(f.game),
		Version: domain.Version(f.version),
		Channel: domain.Channel(f.channel),
	}
	if f.channel <= 0 {
		return launch, fmt.Errorf("invalid channel %d", f.channel)
	}
	return launch, nil
}

func newPathCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Manage remembered installation paths",
	}

	cmd.AddCommand(
		newPathSetCmd(app),
		newPathGetCmd(app),
		newPathListCmd(app),
		newPathRemoveCmd(app),
		newPathPickCmd(app),
	)

	return cmd
}

func newPathSetCmd(app *app) *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   "set <folder>",
		Short: "Remember the installation folder of a game version and channel",
		Long: `Remember the installation folder of a game version and channel.

Older path files stored one folder for every channel of a version. Setting a
channel on such a version keeps the old folder for the legacy channel only
(paths.legacy_channel, 1 by default); other channels must be set again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			launch, err := flags.launch()
			if err != nil {
				return err
			}
			folder, err := installFolder(args[0])
			if err != nil {
				return err
			}

			if err := warnLegacyNarrowing(cmd.Context(), app, cmd.ErrOrStderr(), launch, false); err != nil {
				return err
			}
			if err := app.paths.Set(cmd.Context(), launch.Game, launch.Version, launch.Channel, folder); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s %s channel %d: %s\n", launch.Game, launch.Version, launch.Channel, folder)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newPathGetCmd(app *app) *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the installation folder used for a launch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			launch, err := flags.launch()
			if err != nil {
				return err
			}

			path, ok, err := app.paths.Resolve(cmd.Context(), launch.Game, launch.Version, launch.Channel)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s %s channel %d", domain.ErrPathNotConfigured, launch.Game, launch.Version, launch.Channel)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func newPathListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List remembered installation paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.paths.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(pathsJSON(records))
			}

			rendered, err := app.pathsRenderer(records)
			if err != nil {
				return fmt.Errorf("render paths: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print paths as JSON")
	return cmd
}

func newPathRemoveCmd(app *app) *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Forget the installation folder of a game version and channel",
		Long: `Forget the installation folder of a game version and channel.

A version stored in the older one-folder-for-every-channel shape is first
narrowed to the legacy channel (paths.legacy_channel, 1 by default), so
removing any channel also stops the other channels from resolving.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			launch, err := flags.launch()
			if err != nil {
				return err
			}
			if err := warnLegacyNarrowing(cmd.Context(), app, cmd.ErrOrStderr(), launch, true); err != nil {
				return err
			}

			if err := app.paths.Remove(cmd.Context(), launch.Game, launch.Version, launch.Channel); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s channel %d\n", launch.Game, launch.Version, launch.Channel)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newPathPickCmd(app *app) *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose the installation folder interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			launch, err := flags.launch()
			if err != nil {
				return err
			}
			if !interactive(cmd.InOrStdin(), cmd.OutOrStdout()) {
				return errors.New("path pick needs an interactive terminal; use path set instead")
			}

			folder, err := pickFolder(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Select the %s %s installation folder", launch.Game, launch.Version))
			if err != nil {
				return err
			}
			if err := warnLegacyNarrowing(cmd.Context(), app, cmd.ErrOrStderr(), launch, false); err != nil {
				return err
			}
			if err := app.paths.Set(cmd.Context(), launch.Game, launch.Version, launch.Channel, folder); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s %s channel %d: %s\n", launch.Game, launch.Version, launch.Channel, folder)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// warnLegacyNarrowing tells the user when a write is about to turn a path
// shared by every channel into a single-channel one.
func warnLegacyNarrowing(ctx context.Context, app *app, w io.Writer, launch domain.LaunchContext, removing bool) error {
	legacy, ok, err := app.paths.LegacyPath(ctx, launch.Game, launch.Version)
	if err != nil || !ok {
		return err
	}

	kept := app.paths.LegacyChannel()
	switch {
	case removing && launch.Channel == kept:
		_, err = fmt.Fprintf(w, "warning: %s %s used %s for every channel; it is now forgotten for all of them\n", launch.Game, launch.Version, legacy)
	case removing:
		_, err = fmt.Fprintf(w, "warning: %s %s used %s for every channel; only channel %d keeps it\n", launch.Game, launch.Version, legacy, kept)
	case launch.Channel == kept:
		_, err = fmt.Fprintf(w, "warning: %s %s used %s for every channel; other channels must be set again\n", launch.Game, launch.Version, legacy)
	default:
		_, err = fmt.Fprintf(w, "warning: %s %s used %s for every channel; it is kept for channel %d only\n", launch.Game, launch.Version, legacy, kept)
	}
	return err
}

func installFolder(raw string) (string, error) {
	folder, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolve folder %q: %w", raw, err)
	}
	info, err := os.Stat(folder)
	if err != nil {
		return "", fmt.Errorf("check folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", folder)
	}
	return folder, nil
}

type pathJSON struct {
	Game    domain.GameID  `json:"game"`
	Version domain.Version `json:"version"`
	Channel domain.Channel `json:"channel,omitempty"`
	Legacy  bool           `json:"legacy,omitempty"`
	Path    string         `json:"path"`
}

func pathsJSON(records []domain.InstallRecord) []pathJSON {
	out := []pathJSON{}
	for _, record := range records {
		for _, version := range record.SortedVersions() {
			switch paths := record.Versions[version].(type) {
			case domain.LegacyVersionPath:
				out = append(out, pathJSON{Game: record.Game, Version: version, Legacy: true, Path: paths.Path})
			case domain.ChannelVersionPaths:
				for _, channel := range paths.Channels() {
					out = append(out, pathJSON{Game: record.Game, Version: version, Channel: channel, Path: paths[channel]})
				}
			}
		}
	}
	return out
}
