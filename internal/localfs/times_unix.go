//go:build unix && !linux

package localfs

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// Times returns the entry's access, modification and creation timestamps.
// The entry is lstat'ed so symlink timestamps are their own, not the
// target's. Stat_t carries no birth time on these platforms, so the
// creation slot falls back to the status-change time.
func (e Entry) Times() (atime, mtime, ctime time.Time, err error) {
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
