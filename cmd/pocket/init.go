package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/trellis/pkg/shell"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	Greeting string `yaml:"greeting"`
}

func initCommand() types.Command {
	return types.Command{
		Name:        "init",
		Description: "Create the configuration file and the stash database",
		Usage:       "",
		Middleware:  []types.Middleware{shell.NewMiddleware(initPocket)},
	}
}

// initPocket creates the config directory, writes config.yaml if missing,
// and creates the stash database. Running it again changes nothing.
func initPocket(c *types.Call) (types.Signal, error) {
	s := c.Shared.(*session)

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return types.Exit, fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(s.configDir, configFileExt)
	if err := writeConfigIfMissing(path, s.dataDir); err != nil {
		return types.Exit, fmt.Errorf("write config: %w", err)
	}

	store := s.newStore()
	if err := store.Attach(s.dataDir); err != nil {
		return types.Exit, fmt.Errorf("initialize stash: %w", err)
	}
	if err := store.Detach(); err != nil {
		return types.Exit, fmt.Errorf("finalize stash: %w", err)
	}

	return types.Exit, c.Output.Write(fmt.Sprintf("Initialized pocket in %s\n", s.configDir))
}

// writeConfigIfMissing creates config.yaml with default values. An existing
// file is left alone.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{
		DataDir:  dataDir,
		Greeting: defaultGreeting,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
