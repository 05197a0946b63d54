// Package config provides option resolution for lsr.
package config

import "fmt"

// TimeKind selects which timestamp field is rendered in the time column.
// It only picks the field to print; entries are never reordered by it.
type TimeKind int

const (
	// TimeNone means no time column is rendered.
	TimeNone TimeKind = iota
	// TimeAtime renders the last-access time.
	TimeAtime
	// TimeMtime renders the last-modification time.
	TimeMtime
	// TimeCtime renders the status-change time.
	TimeCtime
)

// ParseTimeKind parses a -c/--time WHEN value. Anything other than
// atime|mtime|ctime is an argument error, rejected before any directory
// is read.
func ParseTimeKind(s string) (TimeKind, error) {
	switch s {
	case "atime":
		return TimeAtime, nil
	case "mtime":
		return TimeMtime, nil
	case "ctime":
		return TimeCtime, nil
	default:
		return TimeNone, fmt.Errorf("invalid argument %q for '-c' option (expected mtime, atime or ctime)", s)
	}
}

// String returns the WHEN spelling of the kind.
func (k TimeKind) String() string {
	switch k {
	case TimeAtime:
		return "atime"
	case TimeMtime:
		return "mtime"
	case TimeCtime:
		return "ctime"
	default:
		return "none"
	}
}

// Options is the fully-resolved configuration for one lsr invocation.
// It is constructed once by the CLI layer (flags over config-file defaults)
// and treated as immutable from then on; the reader and renderer never look
// at process state themselves.
type Options struct {
	// ShowHidden records -a/--all. Note: entry filtering branches only on
	// ShowAlmostAll versus default, so this flag is accepted but does not
	// currently change which entries are listed.
	ShowHidden bool

	// ShowAlmostAll records -A/--almost-all: keep dot-prefixed names but
	// drop the literal "." and ".." entries.
	ShowAlmostAll bool

	// Escape renders non-graphic characters as \NNN octal escapes.
	Escape bool

	// Classify appends a type marker to each name (/ dir, @ symlink,
	// space otherwise).
	Classify bool

	// Time selects the timestamp column; TimeNone renders none.
	Time TimeKind

	// MaxDepth, when set, drops entries whose constructed path has more
	// than this many components.
	MaxDepth *uint

	// Limit, when set, caps the number of listed entries. Applied after
	// hidden filtering, before the depth filter.
	Limit *uint

	// Path is the directory to list. Defaults to ".".
	Path string
}
