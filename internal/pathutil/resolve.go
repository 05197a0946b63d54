// Package pathutil provides path resolution utilities for lsr.
package pathutil

import "os"

// ExpandUser replaces a leading ~ with the user's home directory. The rest
// of the path is left exactly as typed: the listing operates on the path
// the user named, so no cleaning or symlink resolution happens here.
func ExpandUser(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + path[1:], nil
}
