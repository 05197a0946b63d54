package localfs

import (
	"io"
	"io/fs"
	"os"
	"strings"
)

// readBatchSize is the number of directory entries requested per readdir
// call. Batching lets a read failure partway through a large directory keep
// the entries already collected.
const readBatchSize = 256

// Entry is one directory child, captured at listing time.
// The file type and metadata are fetched lazily via Info and Times;
// both can fail if the entry disappears after the listing.
type Entry struct {
	Name string // base name as returned by the directory read
	Path string // listing path + separator + Name, not cleaned

	dirent fs.DirEntry
}

// Info returns the entry's metadata without following symlinks.
func (e Entry) Info() (fs.FileInfo, error) {
	return e.dirent.Info()
}

// ReadEntries lists the immediate children of path in the filesystem's
// native order and applies the display filters:
//
//  1. Hidden filtering: in almost-all mode only the literal "." and ".."
//     entries are dropped; otherwise every dot-prefixed name is dropped.
//     Filtering branches only on almostAll - the -a flag is accepted by the
//     CLI but does not reach this function.
//  2. limit (if non-nil) truncates the filtered sequence to at most *limit
//     entries.
//  3. maxDepth (if non-nil) then removes entries whose constructed path has
//     more than *maxDepth components.
//
// A failure to open the directory is fatal and classified as
// ErrNotFound/ErrPermission where possible. Read failures partway through
// the listing are absorbed: the entries collected so far are kept.
func ReadEntries(path string, almostAll bool, maxDepth, limit *uint) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	defer f.Close()

	var dirents []fs.DirEntry
	for {
		batch, err := f.ReadDir(readBatchSize)
		dirents = append(dirents, batch...)
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(dirents) == 0 {
				// Nothing readable at all - the path is not a
				// directory or is otherwise broken.
				return nil, classifyOpenError(path, err)
			}
			// Partial failure: keep what we have.
			break
		}
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if almostAll {
			if name == "." || name == ".." {
				continue
			}
		} else if IsHiddenName(name) {
			continue
		}
		if limit != nil && uint(len(entries)) >= *limit {
			break
		}
		entries = append(entries, Entry{
			Name:   name,
			Path:   joinChild(path, name),
			dirent: d,
		})
	}

	if maxDepth != nil {
		kept := entries[:0]
		for _, e := range entries {
			if uint(countComponents(e.Path)) <= *maxDepth {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	return entries, nil
}

// joinChild appends name to dir without cleaning the result. filepath.Join
// would strip a leading "./", which changes the component count that the
// max-depth filter depends on.
func joinChild(dir, name string) string {
	sep := string(os.PathSeparator)
	if strings.HasSuffix(dir, sep) {
		return dir + name
	}
	return dir + sep + name
}

// countComponents counts the path components of an uncleaned path. The root
// separator counts as one component, a leading "." counts, interior "." and
// empty segments (doubled separators, trailing separator) do not.
func countComponents(path string) int {
	sep := string(os.PathSeparator)
	n := 0
	if strings.HasPrefix(path, sep) {
		n++
	}
	for i, part := range strings.Split(path, sep) {
		if part == "" {
			continue
		}
		if part == "." && i != 0 {
			continue
		}
		n++
	}
	return n
}
