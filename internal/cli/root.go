// Package cli provides the command-line interface for lsr.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lsr-tools/lsr/internal/config"
	"github.com/lsr-tools/lsr/internal/localfs"
	"github.com/lsr-tools/lsr/internal/logging"
	"github.com/lsr-tools/lsr/internal/pathutil"
	"github.com/lsr-tools/lsr/internal/render"
)

// Version information - set by main at startup.
// The actual version is injected via LDFLAGS on release builds;
// the values here are the fallback for plain `go build`.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "2026-08-30"
)

// rootFlags holds the raw flag values before resolution against the
// config-file defaults.
type rootFlags struct {
	all        bool
	almostAll  bool
	escape     bool
	classify   bool
	timeWhen   string
	maxDepth   uint
	limit      uint
	verbose    bool
	configFile string
}

// NewRootCmd creates the lsr command.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "lsr [flags] [path]",
		Short: "List directory contents",
		Long: `lsr ` + Version + ` - Built: ` + BuildTime + `
List the entries of a directory, one per line, in the filesystem's
native order.

Hidden entries (names starting with a dot) are skipped by default;
-A includes them while still dropping the literal . and .. entries.
-F appends a type marker (/ for directories, @ for symlinks) and
-c WHEN adds a timestamp column (mtime, atime or ctime). Entries are
never sorted.

Defaults for every flag can be placed in ` + "`~/.config/lsr/config`" + `
(INI, section [lsr]); command-line flags win.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		Version:       Version + " (" + BuildTime + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
			logger := logging.NewLogger()

			opts, err := resolveOptions(cmd, args, flags)
			if err != nil {
				return err
			}

			path, err := pathutil.ExpandUser(opts.Path)
			if err != nil {
				return err
			}

			entries, err := localfs.ReadEntries(path, opts.ShowAlmostAll, opts.MaxDepth, opts.Limit)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("path", path).
				Int("entries", len(entries)).
				Str("time", opts.Time.String()).
				Msg("read directory")

			return render.List(cmd.OutOrStdout(), entries, opts.Escape, opts.Time, opts.Classify)
		},
	}

	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Show all entries, including hidden ones (names starting with a dot)")
	cmd.Flags().BoolVarP(&flags.almostAll, "almost-all", "A", false, "Like -a, but do not include the . and .. entries")
	cmd.Flags().BoolVarP(&flags.escape, "escape", "b", false, "Show octal escapes for nongraphic characters")
	cmd.Flags().StringVarP(&flags.timeWhen, "time", "c", "", "Show a timestamp column; WHEN is mtime, atime or ctime")
	cmd.Flags().BoolVarP(&flags.classify, "classify", "F", false, "Append a character to each name indicating the file type")
	cmd.Flags().UintVarP(&flags.maxDepth, "max-depth", "d", 0, "Drop entries whose path has more than N components")
	cmd.Flags().UintVarP(&flags.limit, "limit", "l", 0, "Limit the number of entries displayed")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Verbose output (shows debug messages)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Configuration file path")

	return cmd
}

// resolveOptions builds the immutable Options for this invocation:
// config-file defaults first, then any flag actually given on the command
// line on top.
func resolveOptions(cmd *cobra.Command, args []string, flags *rootFlags) (*config.Options, error) {
	opts := &config.Options{Path: "."}

	defaults, err := config.LoadFile(flags.configFile)
	if err != nil {
		return nil, err
	}
	if defaults != nil {
		if defaults.All != nil {
			opts.ShowHidden = *defaults.All
		}
		if defaults.AlmostAll != nil {
			opts.ShowAlmostAll = *defaults.AlmostAll
		}
		if defaults.Escape != nil {
			opts.Escape = *defaults.Escape
		}
		if defaults.Classify != nil {
			opts.Classify = *defaults.Classify
		}
		opts.Time = defaults.Time
		opts.MaxDepth = defaults.MaxDepth
		opts.Limit = defaults.Limit
	}

	if cmd.Flags().Changed("all") {
		opts.ShowHidden = flags.all
	}
	if cmd.Flags().Changed("almost-all") {
		opts.ShowAlmostAll = flags.almostAll
	}
	if cmd.Flags().Changed("escape") {
		opts.Escape = flags.escape
	}
	if cmd.Flags().Changed("classify") {
		opts.Classify = flags.classify
	}
	if cmd.Flags().Changed("time") {
		kind, err := config.ParseTimeKind(flags.timeWhen)
		if err != nil {
			return nil, err
		}
		opts.Time = kind
	}
	if cmd.Flags().Changed("max-depth") {
		d := flags.maxDepth
		opts.MaxDepth = &d
	}
	if cmd.Flags().Changed("limit") {
		l := flags.limit
		opts.Limit = &l
	}

	if len(args) > 0 {
		opts.Path = args[0]
	}

	return opts, nil
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
