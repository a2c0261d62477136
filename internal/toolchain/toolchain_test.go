package toolchain

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpass/internal/testutil"
)

func TestDiscover(t *testing.T) {
	if _, err := exec.LookPath(DefaultGoCmd); err != nil {
		t.Skip("go command not available")
	}

	tc, err := Discover(context.Background(), "", testutil.NewTestLogger(t))
	require.NoError(t, err)
	assert.NotEmpty(t, tc.GOROOT)
	assert.Contains(t, tc.Version, "go")
	assert.Equal(t, []string{"GOROOT=" + tc.GOROOT}, tc.Env())
}

func TestDiscover_MissingCommand(t *testing.T) {
	tc, err := Discover(context.Background(), "lintpass-no-such-go-binary", nil)
	assert.Nil(t, tc)

	var derr *DiscoveryError
	require.True(t, errors.As(err, &derr))
	assert.Contains(t, derr.Cmd, "lintpass-no-such-go-binary env")
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestDiscover_CanceledContext(t *testing.T) {
	if _, err := exec.LookPath(DefaultGoCmd); err != nil {
		t.Skip("go command not available")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Discover(ctx, "", nil)
	var derr *DiscoveryError
	assert.True(t, errors.As(err, &derr))
}

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    *Toolchain
		wantErr error
	}{
		{
			name: "ok",
			out:  `{"GOROOT": "/usr/local/go", "GOVERSION": "go1.24.11"}`,
			want: &Toolchain{GOROOT: "/usr/local/go", Version: "go1.24.11"},
		},
		{
			name:    "empty goroot",
			out:     `{"GOROOT": "", "GOVERSION": "go1.24.11"}`,
			wantErr: ErrNoGoroot,
		},
		{
			name: "not json",
			out:  "GOROOT=/usr/local/go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEnv([]byte(tt.out))
			if tt.want != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDiscoveryError_Message(t *testing.T) {
	err := &DiscoveryError{Cmd: "go env", Err: errors.New("exit status 1"), Stderr: "bad GOFLAGS"}
	assert.Equal(t, "toolchain discovery: go env: exit status 1: bad GOFLAGS", err.Error())
}
