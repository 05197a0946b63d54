//go:build linux

package localfs

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// Times returns the entry's access, modification and creation timestamps.
// The entry is statx'ed without following symlinks, so symlink timestamps
// are their own, not the target's. The creation time is the birth time
// where the filesystem records one; filesystems that do not fall back to
// the status-change time, which is what ls -c shows there anyway.
func (e Entry) Times() (atime, mtime, ctime time.Time, err error) {
	var stx unix.Statx_t
	err = unix.Statx(unix.AT_FDCWD, e.Path, unix.AT_SYMLINK_NOFOLLOW,
		unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		// Kernel without statx(2).
		return e.statTimes()
	}
	if err != nil {
		err = &fs.PathError{Op: "statx", Path: e.Path, Err: err}
		return
	}
	atime = statxTime(stx.Atime)
	mtime = statxTime(stx.Mtime)
	if stx.Mask&unix.STATX_BTIME != 0 {
		ctime = statxTime(stx.Btime)
	} else {
		ctime = statxTime(stx.Ctime)
	}
	return
}

// statTimes is the pre-statx fallback: no birth time, so the creation slot
// carries the status-change time.
func (e Entry) statTimes() (atime, mtime, ctime time.Time, err error) {
	var st unix.Stat_t
	if err = unix.Lstat(e.Path, &st); err != nil {
		err = &fs.PathError{Op: "lstat", Path: e.Path, Err: err}
		return
	}
	atime = time.Unix(st.Atim.Unix())
	mtime = time.Unix(st.Mtim.Unix())
	ctime = time.Unix(st.Ctim.Unix())
	return
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
