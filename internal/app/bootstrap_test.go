package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

func withRuntime(t *testing.T, v string) {
	t.Helper()
	prev := runtimeVersion
	runtimeVersion = func() string { return v }
	t.Cleanup(func() { runtimeVersion = prev })
}

func TestToSemver(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"go1.22.3", "v1.22.3"},
		{"go1.23rc1", "v1.23"},
		{"1.22", "v1.22"},
		{"go1.21.", "v1.21"},
		{"devel go1.24-abcdef", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toSemver(tt.in))
		})
	}
}

func TestCheckRuntime(t *testing.T) {
	tests := []struct {
		name    string
		running string
		minimum string
		wantErr error
	}{
		{name: "no minimum", running: "go1.10", minimum: ""},
		{name: "equal", running: "go1.22.0", minimum: "go1.22"},
		{name: "newer", running: "go1.25.1", minimum: "go1.22"},
		{name: "bare minimum", running: "go1.25.1", minimum: "1.24"},
		{name: "older", running: "go1.21.9", minimum: "go1.22", wantErr: types.ErrUnsupportedRuntime},
		{name: "development toolchain", running: "devel go1.26-0123abcd", minimum: "go1.22"},
		{name: "bad minimum", running: "go1.25.1", minimum: "latest", wantErr: types.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRuntime(t, tt.running)

			err := CheckRuntime("app", tt.minimum)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckRuntime_MessageNamesBothVersions(t *testing.T) {
	withRuntime(t, "go1.21.9")

	err := CheckRuntime("app", "go1.22")
	require.Error(t, err)
	assert.Equal(t, types.KindUnsupportedRuntime, types.KindOf(err))
	assert.Contains(t, err.Error(), "app: requires go1.22 or newer, go1.21.9 found")
}

func TestCreate(t *testing.T) {
	withRuntime(t, "go1.25.1")

	a, err := Create(types.Config{
		Name:           "app",
		Version:        "0.1.0",
		MinimumRuntime: "go1.22",
		Args:           []string{"app", "greet"},
		Env:            map[string]string{"HOME": "/home/app"},
	})
	require.NoError(t, err)

	assert.Equal(t, "app", a.Name())
	assert.Equal(t, "0.1.0", a.Version())
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, "app", a.Input().ApplicationName())

	home, err := a.Input().Env("HOME")
	require.NoError(t, err)
	assert.Equal(t, "/home/app", home)
}

func TestCreate_Rejects(t *testing.T) {
	withRuntime(t, "go1.20")

	tests := []struct {
		name    string
		cfg     types.Config
		wantErr error
	}{
		{
			name:    "empty name",
			cfg:     types.Config{Args: []string{"app"}},
			wantErr: types.ErrConfigNameEmpty,
		},
		{
			name:    "empty argument vector",
			cfg:     types.Config{Name: "app"},
			wantErr: types.ErrEmptyArgumentVector,
		},
		{
			name:    "runtime too old",
			cfg:     types.Config{Name: "app", MinimumRuntime: "go1.22", Args: []string{"app"}},
			wantErr: types.ErrUnsupportedRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Create(tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, a)
		})
	}
}
