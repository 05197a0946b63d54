// Package render turns directory entries into output lines.
package render

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/lsr-tools/lsr/internal/config"
	"github.com/lsr-tools/lsr/internal/localfs"
)

// timeLayout matches coreutils' short time column: abbreviated month,
// space-padded day, 24h clock.
const timeLayout = "Jan _2 15:04"

// List writes one line per entry to w, in input order. Per entry:
//
//	name[marker][  time]\n
//
// The marker is appended with no separator when classify is set; the time
// column is preceded by exactly two spaces when timeKind selects one. A
// metadata failure aborts the remaining entries - lines already written
// stay written.
func List(w io.Writer, entries []localfs.Entry, escape bool, timeKind config.TimeKind, classify bool) error {
	for _, e := range entries {
		name := e.Name
		if escape {
			name = EscapeString(name)
		} else {
			// Lossy conversion: invalid UTF-8 prints as the replacement
			// rune. The escape path works on the raw bytes instead.
			name = strings.ToValidUTF8(name, "�")
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}

		if classify {
			info, err := e.Info()
			if err != nil {
				return fmt.Errorf("classifying %s: %w", e.Path, err)
			}
			if _, err := io.WriteString(w, string(Marker(info.Mode()))); err != nil {
				return err
			}
		}

		if timeKind != config.TimeNone {
			atime, mtime, ctime, err := e.Times()
			if err != nil {
				return fmt.Errorf("reading times of %s: %w", e.Path, err)
			}
			var ts time.Time
			switch timeKind {
			case config.TimeAtime:
				ts = atime
			case config.TimeMtime:
				ts = mtime
			case config.TimeCtime:
				ts = ctime
			}
			if _, err := fmt.Fprintf(w, "  %s", ts.UTC().Format(timeLayout)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Marker returns the classification character for a file mode: '/' for
// directories, '@' for symlinks, a space for regular files and everything
// else (devices, FIFOs, sockets).
func Marker(mode fs.FileMode) rune {
	switch {
	case mode.IsDir():
		return '/'
	case mode&fs.ModeSymlink != 0:
		return '@'
	default:
		return ' '
	}
}

// EscapeString replaces every character outside the ASCII graphic range
// (0x21-0x7E) with a backslash followed by the 3-digit octal value of its
// low byte. Space is not graphic and becomes \040. Runes above 0xFF are
// truncated to their low byte, and invalid UTF-8 shows up as the escaped
// replacement character - both match how the listing has always printed.
func EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0x20 && r < 0x7f {
			b.WriteRune(r)
		} else {
			fmt.Fprintf(&b, "\\%03o", byte(r))
		}
	}
	return b.String()
}
