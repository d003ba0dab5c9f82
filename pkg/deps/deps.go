package deps

// DefaultCargo is the cargo executable used when Options.Cargo is empty.
const DefaultCargo = "cargo"

// Options configures how manifests are loaded.
type Options struct {
	Cargo   string               // cargo executable (default: "cargo")
	Offline bool                 // pass --offline to cargo
	Locked  bool                 // pass --locked to cargo
	Logger  func(string, ...any) // Progress/diagnostic callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Cargo == "" {
		opts.Cargo = DefaultCargo
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}
