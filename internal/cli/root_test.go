package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpass/internal/cli/commands"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitIssues, ExitCode(commands.ErrIssuesFound))
	assert.Equal(t, ExitIssues, ExitCode(fmt.Errorf("check: %w", commands.ErrIssuesFound)))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"check", "rules", "version", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, flag := range []string{"config", "output", "format", "verbose", "tests", "build-tags", "watch", "watch-debounce", "go"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lintpass v"+Version)
}

func TestRootCmd_RulesUsesFormatFlag(t *testing.T) {
	stdout, _, err := execute(t, "rules", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"count": 2`)
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "rules", "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lintpass.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: yaml\n"), 0o600))

	stdout, stderr, err := execute(t, "rules", "--config", cfgPath, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "count: 2")
	assert.Contains(t, stderr, "Using config file: "+cfgPath)
}

func TestRootCmd_VerboseReachesSubcommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lintpass.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0o600))

	for _, flag := range []string{"-v", "--verbose"} {
		t.Run(flag, func(t *testing.T) {
			stdout, stderr, err := execute(t, "rules", "--config", cfgPath, flag, "--docs")
			require.NoError(t, err)
			assert.Contains(t, stdout, `"count": 2`)
			assert.Contains(t, stderr, "Using config file: "+cfgPath)
		})
	}
}

func TestRootCmd_Completion(t *testing.T) {
	stdout, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lintpass")

	_, _, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootCmd_RequiresPath(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestRootCmd_CheckPath(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.22\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.go"), []byte("package demo\n\nvar X = 1 + 0\n"), 0o600))

	stdout, _, err := execute(t, dir, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "AR01: Ineffective operation")
	assert.Contains(t, stdout, "1 warning")
}
