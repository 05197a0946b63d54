//go:build !unix

package localfs

import "time"

// Times returns the entry's timestamps. Platforms without Stat_t access
// report the modification time for all three kinds.
func (e Entry) Times() (atime, mtime, ctime time.Time, err error) {
	info, err := e.Info()
	if err != nil {
		return
	}
	mtime = info.ModTime()
	atime = mtime
	ctime = mtime
	return
}
