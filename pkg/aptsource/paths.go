package aptsource

import (
	"fmt"
	"path/filepath"

	defs "helios/definitions"
)

// Paths is the set of files swapped between the online and offline states.
type Paths struct {
	// SourcesOnline is the live primary source list.
	SourcesOnline string
	// SourcesOffline is where the primary list is parked during an update.
	SourcesOffline string
	// SourcesSaved is a backup of the primary list used when no parked copy exists.
	SourcesSaved string
	// ExtrasDir holds the snippet files supplementing the primary list.
	ExtrasDir string
	// OfflineDir is where the snippet files are parked.
	OfflineDir string
}

func DefaultPaths() Paths {
	return Paths{
		SourcesOnline:  defs.AptSourcesOnline,
		SourcesOffline: defs.AptSourcesOffline,
		SourcesSaved:   defs.AptSourcesSaved,
		ExtrasDir:      defs.AptExtrasDir,
		OfflineDir:     defs.AptOfflineDir,
	}
}

// PathsUnder lays out the default tree below root, e.g. a test directory or a
// mounted target system.
func PathsUnder(root string) Paths {
	def := DefaultPaths()
	return Paths{
		SourcesOnline:  filepath.Join(root, def.SourcesOnline),
		SourcesOffline: filepath.Join(root, def.SourcesOffline),
		SourcesSaved:   filepath.Join(root, def.SourcesSaved),
		ExtrasDir:      filepath.Join(root, def.ExtrasDir),
		OfflineDir:     filepath.Join(root, def.OfflineDir),
	}
}

func (p Paths) Validate() error {
	for name, path := range map[string]string{
		"sources_online":  p.SourcesOnline,
		"sources_offline": p.SourcesOffline,
		"sources_saved":   p.SourcesSaved,
		"extras_dir":      p.ExtrasDir,
		"offline_dir":     p.OfflineDir,
	} {
		if path == "" {
			return fmt.Errorf("%s must be specified", name)
		}
		if !filepath.IsAbs(path) {
			return fmt.Errorf("%s is not an absolute path: %s", name, path)
		}
	}
	if filepath.Clean(p.ExtrasDir) == filepath.Clean(p.OfflineDir) {
		return fmt.Errorf("extras_dir and offline_dir must differ: %s", p.ExtrasDir)
	}
	return nil
}
