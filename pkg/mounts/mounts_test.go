package mounts

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	er "helios/errors"
)

type fakePartitions struct {
	parts []disk.PartitionStat
	err   error
	all   []bool
}

func (f *fakePartitions) Partitions(_ context.Context, all bool) ([]disk.PartitionStat, error) {
	f.all = append(f.all, all)
	return f.parts, f.err
}

func mounted(paths ...string) []disk.PartitionStat {
	parts := make([]disk.PartitionStat, 0, len(paths))
	for i, p := range paths {
		parts = append(parts, disk.PartitionStat{
			Device:     "/dev/sd" + string(rune('a'+i)) + "1",
			Mountpoint: p,
			Fstype:     "ext4",
		})
	}
	return parts
}

func TestFindAptMountPoint(t *testing.T) {
	tests := []struct {
		name     string
		mounts   []string
		expected string
	}{
		{
			name:     "no partitions",
			expected: "",
		},
		{
			name:     "no APT partition",
			mounts:   []string{"/", "/boot/efi", "/home"},
			expected: "",
		},
		{
			name:     "APT partition",
			mounts:   []string{"/", "/media/user/APTonCD", "/home"},
			expected: "/media/user/APTonCD",
		},
		{
			name:     "first match wins",
			mounts:   []string{"/", "/media/APT-2", "/media/APT-1"},
			expected: "/media/APT-2",
		},
		{
			name:     "case sensitive",
			mounts:   []string{"/media/apt", "/media/Apt"},
			expected: "",
		},
		{
			name:     "substring anywhere",
			mounts:   []string{"/run/media/HELIOS_APT_DISK/data"},
			expected: "/run/media/HELIOS_APT_DISK/data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakePartitions{parts: mounted(tt.mounts...)}
			f, err := NewFinder(lister, "")
			require.NoError(t, err)

			mp, err := f.FindAptMountPoint(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mp)
			assert.Equal(t, []bool{false}, lister.all, "pseudo filesystems must be skipped")
		})
	}
}

func TestFindAptMountPointListingError(t *testing.T) {
	listErr := errors.New("permission denied")

	t.Run("partial listing still matches", func(t *testing.T) {
		f, err := NewFinder(&fakePartitions{parts: mounted("/media/APT"), err: listErr}, "")
		require.NoError(t, err)
		mp, err := f.FindAptMountPoint(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/media/APT", mp)
	})

	t.Run("no match reports the error", func(t *testing.T) {
		f, err := NewFinder(&fakePartitions{err: listErr}, "")
		require.NoError(t, err)
		mp, err := f.FindAptMountPoint(context.Background())
		require.Error(t, err)
		assert.Empty(t, mp)
		assert.Equal(t, listErr, errors.Cause(err))
	})
}

func TestCustomPattern(t *testing.T) {
	f, err := NewFinder(&fakePartitions{parts: mounted("/media/APT", "/media/REPO")}, ".*REPO")
	require.NoError(t, err)
	mp, err := f.FindAptMountPoint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/media/REPO", mp)

	_, err = NewFinder(nil, "(")
	require.Error(t, err)
	assert.Equal(t, er.InvalidConfig, errors.Cause(err))
}

func TestMustFind(t *testing.T) {
	f, err := NewFinder(&fakePartitions{parts: mounted("/")}, "")
	require.NoError(t, err)

	_, err = f.MustFind(context.Background())
	assert.Equal(t, er.NoAptMount, err)
}
