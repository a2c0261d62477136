package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "lintpass.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("output", "o", "", "")
	flags.StringP("format", "f", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.Bool("tests", false, "")
	flags.StringSlice("build-tags", nil, "")
	flags.Bool("watch", false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Tests)
	assert.Empty(t, cfg.BuildTags)
	assert.Equal(t, DefaultWatchDebounce, cfg.WatchDebounce)
	assert.Empty(t, cfg.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `format: json
output: report.json
tests: true
build_tags: [integration, linux]
watch_debounce: 1s
`)

	cfg, err := Load(path, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "report.json", cfg.Output)
	assert.True(t, cfg.Tests)
	assert.Equal(t, []string{"integration", "linux"}, cfg.BuildTags)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_SearchesUpwardFromInput(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "format: table\n")

	nested := filepath.Join(root, "pkg", "inner")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	src := filepath.Join(nested, "a.go")
	require.NoError(t, os.WriteFile(src, []byte("package inner\n"), 0600))

	for _, input := range []string{nested, src} {
		cfg, err := Load("", input, nil)
		require.NoError(t, err)
		assert.Equal(t, "table", cfg.Format)
		assert.Equal(t, path, cfg.File)
	}
}

func TestLoad_YmlExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lintpass.yml"), []byte("format: yaml\n"), 0600))

	cfg, err := Load("", dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: [unclosed\n")
	_, err := Load(path, "", nil)
	require.Error(t, err)
}

func TestLoad_EnvPrecedenceOverFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: json\nbuild_tags: [a]\n")
	t.Setenv("LINTPASS_FORMAT", "yaml")
	t.Setenv("LINTPASS_BUILD_TAGS", "x, y")
	t.Setenv("LINTPASS_TESTS", "true")

	cfg, err := Load(path, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format, "env var should override config file")
	assert.Equal(t, []string{"x", "y"}, cfg.BuildTags)
	assert.True(t, cfg.Tests)
}

func TestLoad_FlagPrecedence(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: json\n")
	t.Setenv("LINTPASS_FORMAT", "yaml")

	flags := testFlags()
	require.NoError(t, flags.Set("format", "table"))
	require.NoError(t, flags.Set("build-tags", "integration"))
	require.NoError(t, flags.Set("config", path))

	cfg, err := Load(path, "", flags)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Format, "flag value should override config file and env var")
	assert.Equal(t, []string{"integration"}, cfg.BuildTags)
}

func TestLoad_FlagNotSetUsesEnv(t *testing.T) {
	t.Setenv("LINTPASS_FORMAT", "markdown")

	cfg, err := Load("", "", testFlags())
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format, "env var should be used when flag is not set")
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: xml\n")
	_, err := Load(path, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value is valid", cfg: Config{}},
		{name: "known format", cfg: Config{Format: "json", BuildTags: []string{"a", "b_c"}}},
		{name: "unknown format", cfg: Config{Format: "html"}, wantErr: "format"},
		{name: "empty tag", cfg: Config{BuildTags: []string{""}}, wantErr: "build_tags"},
		{name: "tag with space", cfg: Config{BuildTags: []string{"a b"}}, wantErr: "build_tags"},
		{name: "negative debounce", cfg: Config{WatchDebounce: -time.Second}, wantErr: "watch_debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	assert.Empty(t, FindConfigFile(filepath.Join(t.TempDir(), "missing")))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(&buf, false)
	quiet.Debug("hidden")
	quiet.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	loud := NewLogger(&buf, true)
	loud.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	ctx := WithLogger(context.Background(), loud)
	assert.Same(t, loud, GetLogger(ctx))
	assert.NotNil(t, GetLogger(context.Background()))
}

func TestFromContext(t *testing.T) {
	def := FromContext(context.Background())
	assert.Equal(t, DefaultFormat, def.Format)
	assert.Equal(t, DefaultWatchDebounce, def.WatchDebounce)

	cfg := &Config{Format: "json"}
	assert.Same(t, cfg, FromContext(WithConfig(context.Background(), cfg)))
}
