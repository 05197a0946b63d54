// Package localfs provides local filesystem operations for lsr.
// This package consolidates the directory-reading logic (hidden file
// detection, native-order listing, entry filtering) behind one API.
package localfs

import "strings"

// IsHiddenName reports whether a directory-entry name is hidden, that is,
// dot-prefixed. The "." and ".." pseudo-entries are not hidden names; the
// almost-all filter handles those.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
