package main

import (
	"io"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/trellis/internal/paths"
	"github.com/mesh-intelligence/trellis/pkg/shell"
	"github.com/mesh-intelligence/trellis/pkg/sqlite"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

// session is the value every pocket middleware receives as Call.Shared.
type session struct {
	env  map[string]string
	diag *diagnostics

	// Set by loadSession before any command runs.
	configDir string
	dataDir   string
	config    *viper.Viper

	newStore func() types.StashStore
}

// newApp builds the pocket Application for argv.
func newApp(argv []string, env map[string]string, stdout, stderr io.Writer) (types.Application, error) {
	in, err := shell.NewInput(argv, env)
	if err != nil {
		return nil, err
	}
	in.RecognizeCommand(true)

	var opts []shell.Option
	if in.HasApplicationOption("v") {
		opts = append(opts, shell.WithLogger(shell.NewLogger("debug", env["POCKET_LOG_FORMAT"], stderr)))
	}

	app := shell.NewApplication("pocket", version, in, shell.NewOutputTo(stdout), opts...)

	s := &session{
		env:      env,
		diag:     newDiagnostics(stderr, env),
		newStore: sqlite.NewStashStore,
	}
	if err := app.RegisterMiddlewareParameter(s); err != nil {
		return nil, err
	}

	app.PushMiddleware(shell.NewMiddleware(loadSession))
	app.RegisterCommand(greetCommand())
	app.RegisterCommand(stashCommand())
	app.RegisterCommand(initCommand())

	app.PushErrorMiddleware(shell.NewRoutedMiddleware(string(types.KindInvalidArgument), reportUserError))
	app.PushErrorMiddleware(shell.NewRoutedMiddleware(string(types.KindIndexOutOfBounds), reportUserError))
	app.PushErrorMiddleware(shell.NewMiddleware(reportFatal))

	return app, nil
}

// loadSession resolves the config and data directories and reads
// config.yaml. --config-dir and --data-dir override the environment.
func loadSession(c *types.Call) (types.Signal, error) {
	s := c.Shared.(*session)

	configDir, err := paths.ResolveConfigDir(stringOption(c.Input, "config-dir"), s.env)
	if err != nil {
		return types.Exit, err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return types.Exit, err
	}
	dataDir, err := paths.ResolveDataDir(stringOption(c.Input, "data-dir"), cfg.GetString(cfgKeyDataDir), s.env)
	if err != nil {
		return types.Exit, err
	}

	s.configDir = configDir
	s.dataDir = dataDir
	s.config = cfg
	return types.Continue, nil
}

// stringOption returns the value of an application option given as
// --name=value, or "" when it is absent or a bare flag.
func stringOption(in types.Input, name string) string {
	v, err := in.ApplicationOption(name)
	if err != nil {
		return ""
	}
	str, _ := v.(string)
	return str
}

func reportUserError(c *types.Call) (types.Signal, error) {
	c.Shared.(*session).diag.userError(c.Fault)
	return types.Exit, nil
}

// reportFatal catches every fault no other error middleware stopped.
func reportFatal(c *types.Call) (types.Signal, error) {
	c.Shared.(*session).diag.fatal(c.Fault)
	c.App.SetExitCode(exitSysError)
	return types.Exit, nil
}
