// Package cli implements the clidoc command-line interface.
//
// The root command opens the docs.rs reference page of an AWS SDK for Rust
// service client, chosen on the command line or with an interactive picker.
// With --sync the page is pinned to the client version the current cargo
// project actually depends on.
//
// # Commands
//
//   - clidoc [service]: open (or with --print, print) the documentation URL
//   - list: show the service catalog
//   - resolve: print the locally resolved client version
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/335g/clidoc/pkg/buildinfo"
	"github.com/335g/clidoc/pkg/catalog"
	"github.com/335g/clidoc/pkg/deps"
	"github.com/335g/clidoc/pkg/deps/rust"
	"github.com/335g/clidoc/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "clidoc"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config Config

	// Environment hooks, replaced in tests.
	stdinIsTerminal  func() bool
	stderrIsTerminal func() bool
	pick             func(context.Context) (catalog.Service, error)
	open             func(string) error
	parsers          func() []deps.ManifestParser
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:           newLogger(w, level),
		config:           defaultConfig(),
		stdinIsTerminal:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		stderrIsTerminal: func() bool { return term.IsTerminal(int(os.Stderr.Fd())) },
		pick:             pickService,
		open:             openBrowser,
		parsers:          rust.Parsers,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.openCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.setup(cmd)
	}

	root.AddCommand(c.listCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup checks the catalog, loads the config file and attaches the logger to
// the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if err := catalog.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "service catalog")
	}

	path, explicit, err := configPath()
	if err != nil {
		c.Logger.Debug("no config directory", "err", err)
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	c.config = cfg
	if path != "" {
		c.Logger.Debug("config", "path", path)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	installLogHooks()
	return nil
}

// completeServices completes the service argument with canonical names.
func completeServices(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all := catalog.All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.Name() + "\t" + s.String()
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
