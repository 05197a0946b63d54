package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lsr-tools/lsr/internal/logging"
)

// isolateConfig points every config-dir lookup at empty temp dirs so a
// developer's real ~/.config/lsr/config cannot leak into the tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())
}

// scenarioDir builds the canonical test directory: a visible file, a hidden
// file and a subdirectory.
func scenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

// runLsr executes the command with the given arguments and returns the
// captured stdout lines.
func runLsr(t *testing.T, args ...string) ([]string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	text := strings.TrimSuffix(out.String(), "\n")
	if text == "" {
		return nil, err
	}
	return strings.Split(text, "\n"), err
}

func TestRootCmdStructure(t *testing.T) {
	cmd := NewRootCmd()
	if cmd.RunE == nil {
		t.Error("RunE function is nil")
	}
	if cmd.Short == "" {
		t.Error("Short description is empty")
	}

	for _, f := range []struct{ long, short string }{
		{"all", "a"},
		{"almost-all", "A"},
		{"escape", "b"},
		{"time", "c"},
		{"classify", "F"},
		{"max-depth", "d"},
		{"limit", "l"},
	} {
		flag := cmd.Flags().Lookup(f.long)
		if flag == nil {
			t.Errorf("flag --%s not registered", f.long)
			continue
		}
		if flag.Shorthand != f.short {
			t.Errorf("flag --%s shorthand = %q, want %q", f.long, flag.Shorthand, f.short)
		}
	}
}

func TestDefaultListing(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	lines, err := runLsr(t, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines %v, want 2", len(lines), lines)
	}
	seen := map[string]bool{}
	for _, line := range lines {
		seen[line] = true
	}
	if !seen["a.txt"] || !seen["sub"] {
		t.Errorf("lines = %v, want a.txt and sub with no trailing marks", lines)
	}
}

func TestAlmostAllListing(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	lines, err := runLsr(t, "-A", dir)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, line := range lines {
		if line == "." || line == ".." {
			t.Errorf("pseudo-entry %q listed", line)
		}
		seen[line] = true
	}
	for _, want := range []string{".hidden", "a.txt", "sub"} {
		if !seen[want] {
			t.Errorf("missing %q in %v", want, lines)
		}
	}
}

func TestClassifyListing(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	lines, err := runLsr(t, "-F", dir)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, line := range lines {
		seen[line] = true
	}
	if !seen["sub/"] {
		t.Errorf("directory line missing / marker: %v", lines)
	}
	if !seen["a.txt "] {
		t.Errorf("regular file line missing trailing space: %v", lines)
	}
}

func TestLimitListing(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	lines, err := runLsr(t, "-l", "1", dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Errorf("got %d lines %v, want exactly 1", len(lines), lines)
	}

	lines, err = runLsr(t, "-l", "0", dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines %v, want 0", len(lines), lines)
	}
}

func TestMaxDepthListing(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	// A depth of zero excludes every entry; order of the rest is covered
	// by the reader tests.
	lines, err := runLsr(t, "-d", "0", dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines %v, want 0", len(lines), lines)
	}
}

func TestTimeListing(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	stamp := time.Date(2024, time.March, 5, 10, 7, 0, 0, time.UTC)
	if err := os.Chtimes(file, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	lines, err := runLsr(t, "-c", "mtime", dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines %v, want 1", len(lines), lines)
	}
	if lines[0] != "a.txt  Mar  5 10:07" {
		t.Errorf("line = %q, want %q", lines[0], "a.txt  Mar  5 10:07")
	}
}

func TestInvalidTimeArgument(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	lines, err := runLsr(t, "-c", "birth", dir)
	if err == nil {
		t.Fatal("expected an argument error for -c birth")
	}
	if len(lines) != 0 {
		t.Errorf("core ran despite invalid argument, output %v", lines)
	}
}

func TestMissingDirectory(t *testing.T) {
	isolateConfig(t)

	if _, err := runLsr(t, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestEscapeListing(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "with space.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := runLsr(t, "-b", dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "with\\040space.txt" {
		t.Errorf("lines = %v, want [with\\040space.txt]", lines)
	}
}

func TestConfigFileDefaults(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	cfg := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(cfg, []byte("[lsr]\nalmost-all = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := runLsr(t, "--config", cfg, dir)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, line := range lines {
		seen[line] = true
	}
	if !seen[".hidden"] {
		t.Errorf("config-file almost-all not applied, lines %v", lines)
	}

	// A flag on the command line overrides the file value.
	lines, err = runLsr(t, "--config", cfg, "--almost-all=false", dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range lines {
		if line == ".hidden" {
			t.Errorf("flag did not override config file, lines %v", lines)
		}
	}
}

func TestVerboseRaisesLogLevel(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)
	t.Cleanup(func() { logging.SetGlobalLevel(zerolog.InfoLevel) })

	if _, err := runLsr(t, "--verbose", dir); err != nil {
		t.Fatal(err)
	}
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Errorf("global level after --verbose = %v, want %v", got, zerolog.DebugLevel)
	}
}

func TestConfigFileInvalid(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	cfg := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(cfg, []byte("[lsr]\ntime = birth\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runLsr(t, "--config", cfg, dir); err == nil {
		t.Fatal("expected an error for an invalid config file")
	}
}
