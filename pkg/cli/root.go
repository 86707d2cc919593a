package cli

import (
	"github.com/spf13/cobra"

	defs "helios/definitions"
	log "helios/logger"
	"helios/pkg/aptsource"
	"helios/pkg/configstack"
	"helios/pkg/mounts"
	"helios/pkg/popup"
)

var (
	configPath string
	logLevel   string
	debug      bool

	// RootCmd is the root command for helios-apt
	RootCmd = &cobra.Command{
		Use:   defs.ProgramName,
		Short: "APT source switching and popups for HeliOS offline updates",
		Long: `helios-apt holds the small steps an offline HeliOS update is made of.

It parks the APT source lists while APT is pointed at an APTonCD medium,
restores them afterwards, and shows timed notices through yad.

Examples:
  # Point APT at the mounted APTonCD medium
  helios-apt offline

  # Put the network sources back
  helios-apt online

  # Tell the user what happened
  helios-apt notice "Update finished"`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

// helpers wired by setup for the running command
type env struct {
	cfg      *configstack.Config
	sources  *aptsource.Manager
	finder   *mounts.Finder
	notifier *popup.Notifier
}

var app *env

// replaced in tests
var (
	newDialog = func(cfg popup.Config) popup.Dialog {
		return popup.NewYad(cfg.Binary)
	}
	newPartitionLister = mounts.HostPartitions
)

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: discovered under /etc/helios)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if debug {
		cfg.Log.Debug = true
	}
	if err := log.Init(&cfg.Log); err != nil {
		return err
	}
	log.Pretty("loaded helios config: %v", cfg)

	finder, err := mounts.NewFinder(newPartitionLister(), cfg.MountPattern)
	if err != nil {
		return err
	}
	notifier := popup.NewNotifier(newDialog(cfg.Popup), cfg.Popup)
	notifier.SetOutput(cmd.OutOrStdout())

	app = &env{
		cfg:      cfg,
		sources:  aptsource.NewManager(cfg.Apt),
		finder:   finder,
		notifier: notifier,
	}
	log.WithField("files", cfg.Files).Debugf("%s %s", defs.ProgramName, cmd.Name())
	return nil
}

func loadConfig() (*configstack.Config, error) {
	if configPath != "" {
		return configstack.LoadFiles(configPath)
	}
	return configstack.Load()
}
