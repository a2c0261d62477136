// Package config loads lintpass CLI configuration.
//
// Values come from, lowest precedence first: built-in defaults, a
// lintpass.yaml (or .yml) file, LINTPASS_* environment variables and
// explicitly set command-line flags. Configuration covers where and how
// results are written and how the input is loaded; it never selects rules.
package config

import "time"

// Defaults.
const (
	DefaultFormat        = "auto"
	DefaultWatchDebounce = 200 * time.Millisecond
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"lintpass.yaml", "lintpass.yml"}

// Config holds all CLI configuration options.
type Config struct {
	// Output is the file diagnostics are written to; empty means stdout.
	Output string `koanf:"output"`

	// Format is the output mode: auto, text, markdown, json, yaml or table.
	Format string `koanf:"format"`

	Verbose bool `koanf:"verbose"`

	// Tests includes _test.go files in the loaded program.
	Tests bool `koanf:"tests"`

	BuildTags []string `koanf:"build_tags"`

	// GoCmd is the go command used for toolchain discovery.
	GoCmd string `koanf:"go"`

	Watch         bool          `koanf:"watch"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}
