package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Defaults location:
//   - Unix: ~/.config/lsr/config (XDG config directory)
//   - Windows: %APPDATA%\lsr\config
//
// INI format:
//
//	[lsr]
//	all = false
//	almost-all = true
//	escape = false
//	classify = true
//	time = mtime
//	max-depth = 4
//	limit = 100
//
// Every key is optional; flags given on the command line override file
// values.

// FileDefaults holds the option defaults read from a config file. Pointer
// fields distinguish "not set" from an explicit false/zero.
type FileDefaults struct {
	All       *bool
	AlmostAll *bool
	Escape    *bool
	Classify  *bool
	Time      TimeKind
	MaxDepth  *uint
	Limit     *uint
}

// DefaultFilePath returns the per-user config file location.
func DefaultFilePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(homeDir, ".config", "lsr", "config")
	}
	return filepath.Join(configDir, "lsr", "config")
}

// LoadFile reads option defaults from the given config file. With an empty
// path the per-user location is tried and a missing file yields nil
// defaults; an explicitly named file must exist. A malformed file or an
// invalid value is an error either way.
func LoadFile(path string) (*FileDefaults, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilePath()
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, nil
		}
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	section := f.Section("lsr")
	defaults := &FileDefaults{}

	boolKeys := map[string]**bool{
		"all":        &defaults.All,
		"almost-all": &defaults.AlmostAll,
		"escape":     &defaults.Escape,
		"classify":   &defaults.Classify,
	}
	for name, dst := range boolKeys {
		if !section.HasKey(name) {
			continue
		}
		v, err := section.Key(name).Bool()
		if err != nil {
			return nil, fmt.Errorf("config file %s: key %q: %w", path, name, err)
		}
		*dst = &v
	}

	if section.HasKey("time") {
		kind, err := ParseTimeKind(section.Key("time").String())
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		defaults.Time = kind
	}

	uintKeys := map[string]**uint{
		"max-depth": &defaults.MaxDepth,
		"limit":     &defaults.Limit,
	}
	for name, dst := range uintKeys {
		if !section.HasKey(name) {
			continue
		}
		v, err := section.Key(name).Uint()
		if err != nil {
			return nil, fmt.Errorf("config file %s: key %q: %w", path, name, err)
		}
		*dst = &v
	}

	return defaults, nil
}
