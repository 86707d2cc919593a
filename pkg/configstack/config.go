package configstack

import (
	"strconv"

	"github.com/gookit/ini/v2"
	"github.com/pkg/errors"

	er "helios/errors"
	log "helios/logger"
	"helios/pkg/aptsource"
	"helios/pkg/mounts"
	"helios/pkg/popup"
)

// INI keys, "section.key".
const (
	KeySourcesOnline  = "apt.sources_online"
	KeySourcesOffline = "apt.sources_offline"
	KeySourcesSaved   = "apt.sources_saved"
	KeyExtrasDir      = "apt.extras_dir"
	KeyOfflineDir     = "apt.offline_dir"

	KeyMountPattern = "mount.pattern"

	KeyDialogBinary = "popup.binary"
	KeyFont         = "popup.font"
	KeyNoticeFore   = "popup.notice_fore"
	KeyErrorFore    = "popup.error_fore"
	KeyBack         = "popup.back"
	KeyMinTimeout   = "popup.min_timeout"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogOutput = "log.output"
	KeyLogDebug  = "log.debug"
)

const (
	EnvLogLevel = "HELIOS_LOG_LEVEL"
	EnvDebug    = "HELIOS_DEBUG"
)

// Config is everything the helpers need, resolved from defaults, config files
// and environment.
type Config struct {
	Apt          aptsource.Paths
	MountPattern string
	Popup        popup.Config
	Log          log.Config

	// Files lists the config files that were loaded, in order.
	Files []string
}

func Default() *Config {
	return &Config{
		Apt:   aptsource.DefaultPaths(),
		Popup: popup.DefaultConfig(),
		Log:   log.Config{Format: "text"},
	}
}

// Load discovers the config files and layers them over the defaults.
func Load() (*Config, error) {
	files, err := DiscoverConfigFiles()
	if err != nil {
		return nil, errors.Wrap(er.InvalidConfig, err.Error())
	}
	return LoadFiles(files...)
}

// LoadFiles layers the given INI files over the defaults; later files win.
func LoadFiles(files ...string) (*Config, error) {
	cfg := Default()

	if len(files) > 0 {
		raw := ini.New()
		if err := raw.LoadFiles(files...); err != nil {
			return nil, errors.Wrapf(er.InvalidConfig, "failed to load %v: %v", files, err)
		}
		cfg.apply(raw)
		cfg.Files = files
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(raw *ini.Ini) {
	c.Apt.SourcesOnline = raw.String(KeySourcesOnline, c.Apt.SourcesOnline)
	c.Apt.SourcesOffline = raw.String(KeySourcesOffline, c.Apt.SourcesOffline)
	c.Apt.SourcesSaved = raw.String(KeySourcesSaved, c.Apt.SourcesSaved)
	c.Apt.ExtrasDir = raw.String(KeyExtrasDir, c.Apt.ExtrasDir)
	c.Apt.OfflineDir = raw.String(KeyOfflineDir, c.Apt.OfflineDir)

	c.MountPattern = raw.String(KeyMountPattern, c.MountPattern)

	c.Popup.Binary = raw.String(KeyDialogBinary, c.Popup.Binary)
	font := raw.String(KeyFont, c.Popup.NoticeStyle.Font)
	back := raw.String(KeyBack, c.Popup.NoticeStyle.Back)
	c.Popup.NoticeStyle = popup.Style{Font: font, Fore: raw.String(KeyNoticeFore, c.Popup.NoticeStyle.Fore), Back: back}
	c.Popup.ErrorStyle = popup.Style{Font: font, Fore: raw.String(KeyErrorFore, c.Popup.ErrorStyle.Fore), Back: back}
	c.SetMinTimeout(raw.String(KeyMinTimeout))

	c.Log.Level = raw.String(KeyLogLevel, c.Log.Level)
	c.Log.Format = raw.String(KeyLogFormat, c.Log.Format)
	c.Log.Output = raw.String(KeyLogOutput, c.Log.Output)
	c.SetDebug(raw.String(KeyLogDebug))
}

func (c *Config) applyEnv() {
	if level := FirstNonEmptyEnv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	c.SetDebug(FirstNonEmptyEnv(EnvDebug))
}

// SetMinTimeout keeps the current value when s is empty or not a positive
// number of seconds.
func (c *Config) SetMinTimeout(s string) {
	if s == "" {
		return
	}
	secs, err := strconv.Atoi(s)
	if err != nil || secs <= 0 {
		log.Debugf("failed to parse popup min_timeout %q, keeping %d: %v", s, c.Popup.MinTimeout, err)
		return
	}
	c.Popup.MinTimeout = secs
}

// SetDebug only ever switches debug on; an empty or false value leaves it.
func (c *Config) SetDebug(s string) {
	if s == "" {
		return
	}
	debug, err := strconv.ParseBool(s)
	if err != nil {
		log.Debugf("failed to parse debug value %v into bool: %v", s, err)
		return
	}
	c.Log.Debug = c.Log.Debug || debug
}

func (c *Config) Validate() error {
	if err := c.Apt.Validate(); err != nil {
		return errors.Wrap(er.InvalidConfig, err.Error())
	}
	if _, err := mounts.CompilePattern(c.MountPattern); err != nil {
		return err
	}
	return nil
}
