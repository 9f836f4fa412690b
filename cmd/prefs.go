package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const prefDeleteHoyoPass = "delete-hoyopass"

func newPrefsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and change launch preferences",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "get <name>",
			Short:     "Print a preference",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{prefDeleteHoyoPass},
			RunE: func(cmd *cobra.Command, args []string) error {
				if args[0] != prefDeleteHoyoPass {
					return fmt.Errorf("unknown preference %q", args[0])
				}
				value, err := app.preferences.DeleteHoyoPass(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", prefDeleteHoyoPass, value)
				return err
			},
		},
		&cobra.Command{
			Use:       "set <name> <value>",
			Short:     "Change a preference",
			Args:      cobra.ExactArgs(2),
			ValidArgs: []string{prefDeleteHoyoPass},
			RunE: func(cmd *cobra.Command, args []string) error {
				if args[0] != prefDeleteHoyoPass {
					return fmt.Errorf("unknown preference %q", args[0])
				}
				value, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("invalid value %q for %s: want true or false", args[1], prefDeleteHoyoPass)
				}
				if err := app.preferences.SetDeleteHoyoPass(cmd.Context(), value); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", prefDeleteHoyoPass, value)
				return err
			},
		},
	)

	return cmd
}
