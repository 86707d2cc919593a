package mounts

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"

	defs "helios/definitions"
	er "helios/errors"
	log "helios/logger"
)

// PartitionLister returns the mounted partitions in the order the OS reports
// them. all=false skips pseudo filesystems.
type PartitionLister interface {
	Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error)
}

type hostPartitions struct{}

func (hostPartitions) Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, all)
}

// HostPartitions reads the live mount table.
func HostPartitions() PartitionLister {
	return hostPartitions{}
}

type Finder struct {
	lister  PartitionLister
	pattern *regexp.Regexp
}

// NewFinder compiles pattern, anchored at the start of the mount path. An
// empty pattern selects the default `.*APT.*`.
func NewFinder(lister PartitionLister, pattern string) (*Finder, error) {
	if lister == nil {
		lister = HostPartitions()
	}
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &Finder{lister: lister, pattern: re}, nil
}

func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = defs.DefaultMountPattern
	}
	re, err := regexp.Compile("^(" + pattern + ")")
	if err != nil {
		return nil, errors.Wrapf(er.InvalidConfig, "mount pattern %q: %v", pattern, err)
	}
	return re, nil
}

// FindAptMountPoint returns the first mount path matching the pattern, or ""
// when nothing matches. A listing error is only reported when no partition
// matched.
func (f *Finder) FindAptMountPoint(ctx context.Context) (string, error) {
	partitions, listErr := f.lister.Partitions(ctx, false)
	if listErr != nil {
		log.WithError(listErr).Debugf("partition listing returned %d entries", len(partitions))
	}

	for _, p := range partitions {
		if m := f.pattern.FindStringSubmatch(p.Mountpoint); m != nil {
			log.WithFields(logrus.Fields{
				"device": p.Device,
				"fstype": p.Fstype,
			}).Debugf("APT partition mounted at %s", m[1])
			return m[1], nil
		}
	}

	if listErr != nil {
		return "", errors.Wrap(listErr, "failed to list mounted partitions")
	}
	return "", nil
}

// MustFind is FindAptMountPoint with "not mounted" turned into er.NoAptMount.
func (f *Finder) MustFind(ctx context.Context) (string, error) {
	mp, err := f.FindAptMountPoint(ctx)
	if err != nil {
		return "", err
	}
	if mp == "" {
		return "", er.NoAptMount
	}
	return mp, nil
}
