package types

// Config holds what the bootstrap needs to build an Application.
type Config struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`

	// MinimumRuntime is the oldest Go runtime the application accepts,
	// e.g. "go1.22". Empty disables the check.
	MinimumRuntime string `json:"minimum_runtime" yaml:"minimum_runtime"`

	// Args is the raw argument vector including the program name.
	Args []string `json:"-" yaml:"-"`

	// Env is the captured environment.
	Env map[string]string `json:"-" yaml:"-"`
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Name == "" {
		return ErrConfigNameEmpty
	}
	if len(c.Args) == 0 {
		return ErrEmptyArgumentVector
	}
	return nil
}

