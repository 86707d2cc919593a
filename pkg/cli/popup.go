package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	er "helios/errors"
)

var header string

var noticeCmd = &cobra.Command{
	Use:   "notice MESSAGE...",
	Short: "Show a timed notice popup",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.notifier.ShowNotice(strings.Join(args, " "), header)
	},
}

var errorCmd = &cobra.Command{
	Use:   "error MESSAGE...",
	Short: "Show a timed error popup",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.notifier.ShowError(strings.Join(args, " "), header)
	},
}

var warnCmd = &cobra.Command{
	Use:   "warn MESSAGE...",
	Short: "Print a bordered warning",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.notifier.Warn(strings.Join(args, " "), header)
		return nil
	},
}

var dieCmd = &cobra.Command{
	Use:   "die [MESSAGE...]",
	Short: "Show an error popup and exit with status 1",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.notifier.Fatal(strings.Join(args, " "), header)
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Ask for a password and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, ok, err := app.notifier.PromptPassword(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			return er.DialogCancelled
		}
		fmt.Fprintln(cmd.OutOrStdout(), secret)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{noticeCmd, errorCmd, warnCmd, dieCmd} {
		cmd.Flags().StringVar(&header, "header", "", "label in front of the message")
	}

	RootCmd.AddCommand(noticeCmd)
	RootCmd.AddCommand(errorCmd)
	RootCmd.AddCommand(warnCmd)
	RootCmd.AddCommand(dieCmd)
	RootCmd.AddCommand(passwdCmd)
}
