// Package toolchain locates the Go toolchain the host frontend drives.
package toolchain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultGoCmd is the go command looked up on PATH when none is configured.
const DefaultGoCmd = "go"

// DiscoveryError reports that the toolchain could not be located or queried.
type DiscoveryError struct {
	Cmd    string // command line that was run
	Err    error  // underlying failure
	Stderr string // trimmed stderr, if any
}

func (e *DiscoveryError) Error() string {
	msg := fmt.Sprintf("toolchain discovery: %s: %v", e.Cmd, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ErrNoGoroot is wrapped by a DiscoveryError when the toolchain reports an
// empty GOROOT.
var ErrNoGoroot = errors.New("go env reported an empty GOROOT")

// Toolchain describes a discovered Go installation.
type Toolchain struct {
	GoCmd   string
	GOROOT  string
	Version string // e.g. "go1.24.11"
}

// Env returns the environment entries that pin the frontend to this
// toolchain.
func (t *Toolchain) Env() []string {
	return []string{"GOROOT=" + t.GOROOT}
}

// Discover runs `go env` to locate GOROOT and the toolchain version. goCmd
// may be empty to use DefaultGoCmd.
func Discover(ctx context.Context, goCmd string, logger *slog.Logger) (*Toolchain, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if goCmd == "" {
		goCmd = DefaultGoCmd
	}

	args := []string{"env", "-json", "GOROOT", "GOVERSION"}
	cmdline := goCmd + " " + strings.Join(args, " ")

	path, err := exec.LookPath(goCmd)
	if err != nil {
		return nil, &DiscoveryError{Cmd: cmdline, Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &DiscoveryError{Cmd: cmdline, Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}

	tc, err := parseEnv(stdout.Bytes())
	if err != nil {
		return nil, &DiscoveryError{Cmd: cmdline, Err: err}
	}
	tc.GoCmd = path

	logger.Debug("discovered toolchain", "go", path, "goroot", tc.GOROOT, "version", tc.Version)
	return tc, nil
}

func parseEnv(out []byte) (*Toolchain, error) {
	var env struct {
		GOROOT    string
		GOVERSION string
	}
	if err := json.Unmarshal(out, &env); err != nil {
		return nil, fmt.Errorf("decode go env output: %w", err)
	}
	if env.GOROOT == "" {
		return nil, ErrNoGoroot
	}
	return &Toolchain{GOROOT: env.GOROOT, Version: env.GOVERSION}, nil
}
