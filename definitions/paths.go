package defs

import "os"

const (
	AptDir = "/etc/apt"
	// primary source list and its parked/saved copies
	AptSourcesOnline  = AptDir + "/sources.list"
	AptSourcesOffline = AptOfflineDir + "/sources.list"
	AptSourcesSaved   = AptDir + "/sources.list.save"
	// snippet files supplementing the primary list, and where they are parked
	AptExtrasDir  = AptDir + "/sources.list.d"
	AptOfflineDir = AptDir + "/offline.d"

	DirMode  = os.FileMode(0755)
	FileMode = os.FileMode(0644)
)

const (
	// HeliOS update configuration (INI).
	HeliosConfDir    = "/etc/helios"
	HeliosConfDropin = HeliosConfDir + "/update.conf.d"
	DefaultConfFile  = "update.conf"
	// environment overrides: a single config file, or a directory of them
	HeliosConfEnv    = "HELIOS_CONF_FILE"
	HeliosConfDirEnv = "HELIOS_CONF_DIR"
)
