package aptsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	defs "helios/definitions"
	er "helios/errors"
	log "helios/logger"
	"helios/pkg/utils"
)

const (
	msgNoSource       = "No APTonCD source repository specified"
	msgSwitchedOK     = "APT sources prepared for update OK"
	msgRestoredOK     = "APT sources restored OK"
	msgParkPrimary    = "Unable to move the APT sources.list off-line: "
	msgParkExtras     = "Unable to relocate APT sources off-line: "
	msgPointSources   = "Unable to point APT sources.list to %q -- %v"
	msgRestorePrimary = "Unable to restore the APT sources.list file: "
	msgRestoreSaved   = "Unable to restore the APT sources.list from the \"saved\" version: "
	msgRestoreExtras  = "Unable to restore all of the off-line APT sources: "
)

// Manager swaps the APT source lists between their online and offline
// locations. It keeps no state between calls; the filesystem is the state.
type Manager struct {
	paths Paths

	move func(src, dst string) error
	copy func(src, dst string, mode os.FileMode) error
}

func NewManager(paths Paths) *Manager {
	return &Manager{
		paths: paths,
		move:  utils.MoveFile,
		copy:  utils.CopyFile,
	}
}

func (m *Manager) Paths() Paths {
	return m.paths
}

// SwitchOffline parks the primary source list and every extras file, then
// points APT at the local repository rooted at newSource.
func (m *Manager) SwitchOffline(newSource string) Result {
	if newSource == "" {
		return notice(msgNoSource, er.NoSourceRepo)
	}
	p := m.paths
	logger := log.WithField("source", newSource)

	if utils.IsRegular(p.SourcesOnline) {
		if err := m.parkPrimary(); err != nil {
			logger.WithError(err).Warn("failed to park primary source list")
			return fail(msgParkPrimary+err.Error(), er.RelocateFailed)
		}
	}

	if merr := m.relocateAll(p.ExtrasDir, p.OfflineDir); merr.ErrorOrNil() != nil {
		logger.Warnf("%d extras file(s) could not be parked", merr.Len())
		r := fail(msgParkExtras+merr.Error(), er.RelocateFailed)
		r.Failures = merr.Errors
		return r
	}

	line := fmt.Sprintf(defs.SourceLineFormat, newSource)
	if err := os.WriteFile(p.SourcesOnline, []byte(line), defs.FileMode); err != nil {
		logger.WithError(err).Warn("failed to write local source list")
		return fail(fmt.Sprintf(msgPointSources, newSource, err), er.RelocateFailed)
	}

	logger.Debugf("%s now reads %q", p.SourcesOnline, strings.TrimSpace(line))
	return succeed(msgSwitchedOK)
}

// RestoreOnline reverses SwitchOffline. The primary list comes back from its
// parked copy, or from the saved backup when nothing was parked.
func (m *Manager) RestoreOnline() Result {
	p := m.paths

	switch {
	case utils.IsRegular(p.SourcesOffline):
		log.Debugf("restoring %s from %s", p.SourcesOnline, p.SourcesOffline)
		if err := m.move(p.SourcesOffline, p.SourcesOnline); err != nil {
			log.WithError(err).Warn("failed to restore primary source list")
			return fail(msgRestorePrimary+err.Error(), er.RestoreFailed)
		}
	case utils.IsRegular(p.SourcesSaved):
		log.Debugf("restoring %s from saved copy %s", p.SourcesOnline, p.SourcesSaved)
		if err := m.copy(p.SourcesSaved, p.SourcesOnline, defs.FileMode); err != nil {
			log.WithError(err).Warn("failed to restore primary source list from saved copy")
			return fail(msgRestoreSaved+err.Error(), er.RestoreFailed)
		}
	default:
		log.Debugf("neither %s nor %s exist, leaving %s alone", p.SourcesOffline, p.SourcesSaved, p.SourcesOnline)
	}

	if merr := m.relocateAll(p.OfflineDir, p.ExtrasDir); merr.ErrorOrNil() != nil {
		log.Warnf("%d off-line file(s) could not be restored", merr.Len())
		r := fail(msgRestoreExtras+merr.Error(), er.RestoreFailed)
		r.Failures = merr.Errors
		return r
	}

	return succeed(msgRestoredOK)
}

func (m *Manager) parkPrimary() error {
	p := m.paths
	if err := utils.EnsureDir(filepath.Dir(p.SourcesOffline), defs.DirMode); err != nil {
		return err
	}
	if err := utils.RemoveIfRegular(p.SourcesOffline); err != nil {
		return err
	}
	log.Debugf("parking %s at %s", p.SourcesOnline, p.SourcesOffline)
	return m.move(p.SourcesOnline, p.SourcesOffline)
}

// relocateAll moves every non-directory entry of from into to, replacing
// regular files already there. Every entry is attempted; the failures are
// returned together once the pass is over.
func (m *Manager) relocateAll(from, to string) *multierror.Error {
	result := &multierror.Error{ErrorFormat: joinErrors}

	names, err := utils.ListFiles(from)
	if err != nil {
		return multierror.Append(result, err)
	}
	if len(names) == 0 {
		return result
	}
	if err := utils.EnsureDir(to, defs.DirMode); err != nil {
		return multierror.Append(result, err)
	}

	for _, name := range names {
		src := filepath.Join(from, name)
		dst := filepath.Join(to, name)
		if err := m.relocate(src, dst); err != nil {
			log.WithError(err).WithField("file", name).Debug("relocation failed")
			result = multierror.Append(result, err)
			continue
		}
		log.WithField("file", name).Debugf("moved %s -> %s", from, to)
	}
	return result
}

func (m *Manager) relocate(src, dst string) error {
	if err := utils.RemoveIfRegular(dst); err != nil {
		return err
	}
	return m.move(src, dst)
}

// joinErrors renders collected failures on one line.
func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}
