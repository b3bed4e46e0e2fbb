// Package paths resolves configuration and data directory locations from an
// environment map rather than the process environment.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform config and data roots.
const AppDirName = "pocket"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "POCKET_CONFIG_DIR"
	EnvDataDir   = "POCKET_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// home prefers HOME from env over the platform lookup.
func home(env map[string]string) (string, error) {
	if h := env["HOME"]; h != "" {
		return h, nil
	}
	return platformDir.homeDir()
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/pocket (fallback ~/.config/pocket)
// macOS:   ~/Library/Application Support/pocket
// Windows: %APPDATA%/pocket
func DefaultConfigDir(env map[string]string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}

	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}
	h, err := home(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(h, ".config", AppDirName), nil
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/pocket (fallback ~/.local/share/pocket)
// Others:  same as DefaultConfigDir
func DefaultDataDir(env map[string]string) (string, error) {
	if platformDir.goos != "linux" {
		return DefaultConfigDir(env)
	}

	if xdg := env["XDG_DATA_HOME"]; xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}
	h, err := home(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(h, ".local", "share", AppDirName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > POCKET_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string, env map[string]string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if dir := env[EnvConfigDir]; dir != "" {
		return filepath.Abs(dir)
	}
	return DefaultConfigDir(env)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config file value > POCKET_DATA_DIR > DefaultDataDir.
func ResolveDataDir(flag, configValue string, env map[string]string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if dir := env[EnvDataDir]; dir != "" {
		return filepath.Abs(dir)
	}
	return DefaultDataDir(env)
}
