package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	log "helios/logger"
	"helios/pkg/aptsource"
)

var quiet bool

var mountCmd = &cobra.Command{
	Use:   "mount",
	Short: "Print where the APTonCD medium is mounted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mp, err := app.finder.MustFind(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mp)
		return nil
	},
}

var offlineCmd = &cobra.Command{
	Use:   "offline [PATH]",
	Short: "Park the APT sources and point APT at a local repository",
	Long: `Park /etc/apt/sources.list and every file in /etc/apt/sources.list.d,
then write a sources.list that points at PATH.

Without PATH the mounted APTonCD medium is used.`,
	Example: `  helios-apt offline                       # use the mounted APTonCD medium
  helios-apt offline /media/user/APTonCD   # use an explicit repository
  helios-apt offline --quiet /srv/repo     # report on stdout, no popup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOffline,
}

var onlineCmd = &cobra.Command{
	Use:   "online",
	Short: "Restore the parked APT sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(app.sources.RestoreOnline())
	},
}

func init() {
	for _, cmd := range []*cobra.Command{offlineCmd, onlineCmd} {
		cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print the result instead of showing a popup")
	}

	RootCmd.AddCommand(mountCmd)
	RootCmd.AddCommand(offlineCmd)
	RootCmd.AddCommand(onlineCmd)
}

func runOffline(cmd *cobra.Command, args []string) error {
	var source string
	if len(args) > 0 {
		source = args[0]
	} else {
		mp, err := app.finder.FindAptMountPoint(cmd.Context())
		if err != nil {
			return err
		}
		source = mp
	}
	return report(app.sources.SwitchOffline(source))
}

// report surfaces r to the user and turns a failed result into an error.
func report(r aptsource.Result) error {
	label := string(r.Severity)
	if quiet {
		app.notifier.Warn(r.Message, label)
		return r.Err()
	}

	var err error
	if r.Severity == aptsource.SeverityError {
		err = app.notifier.ShowError(r.Message, label)
	} else {
		err = app.notifier.ShowNotice(r.Message, label)
	}
	if err != nil {
		log.WithError(err).Warn("popup failed, printing instead")
		app.notifier.Warn(r.Message, label)
	}
	return r.Err()
}
