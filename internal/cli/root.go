package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/335g/clidoc/pkg/catalog"
	"github.com/335g/clidoc/pkg/deps"
	"github.com/335g/clidoc/pkg/deps/rust"
	"github.com/335g/clidoc/pkg/docs"
	"github.com/335g/clidoc/pkg/errors"
	"github.com/335g/clidoc/pkg/resolver"
)

// syncOptions controls how the project's dependency graph is loaded.
type syncOptions struct {
	manifestPath string
	lockfile     bool
	cargo        string
	offline      bool
	locked       bool
}

func (o *syncOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.manifestPath, "manifest-path", "", "path to Cargo.toml or Cargo.lock (default: current project)")
	cmd.Flags().BoolVar(&o.lockfile, "lockfile", false, "read Cargo.lock directly instead of running cargo metadata")
	cmd.Flags().StringVar(&o.cargo, "cargo", deps.DefaultCargo, "cargo executable")
	cmd.Flags().BoolVar(&o.offline, "offline", false, "run cargo without network access")
	cmd.Flags().BoolVar(&o.locked, "locked", false, "require Cargo.lock to be up to date")
}

// merge fills options not set on the command line from cfg.
func (o *syncOptions) merge(cmd *cobra.Command, cfg Config) {
	flags := cmd.Flags()
	if !flags.Changed("manifest-path") {
		o.manifestPath = cfg.ManifestPath
	}
	if !flags.Changed("cargo") {
		o.cargo = cfg.Cargo
	}
	if !flags.Changed("offline") {
		o.offline = cfg.Offline
	}
}

type openOptions struct {
	sync    bool
	print   bool
	docsURL string
	syncOptions
}

// openCommand builds the root command: pick a service and open its docs.
func (c *CLI) openCommand() *cobra.Command {
	var opts openOptions

	cmd := &cobra.Command{
		Use:   appName + " [service]",
		Short: "Open the docs.rs client reference of an AWS SDK for Rust service",
		Long: `Open the docs.rs reference page of an AWS SDK for Rust service client.

The service is given by canonical name (s3, sfn, pipes, ...) or display name,
or chosen interactively when omitted. With --sync the page is pinned to the
version of aws-sdk-<service> resolved in the current cargo project; if the
project does not depend on it, the latest documentation is opened.`,
		Example: `  clidoc
  clidoc s3
  clidoc --sync lambda
  clidoc -s -p --manifest-path ./crates/api/Cargo.toml dynamodb`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sync") {
				opts.sync = c.config.Sync
			}
			if !cmd.Flags().Changed("docs-url") {
				opts.docsURL = c.config.DocsURL
			}
			opts.merge(cmd, c.config)
			return c.runOpen(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.sync, "sync", "s", false, "open the docs for the locally resolved version")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "print the URL instead of opening a browser")
	cmd.Flags().StringVar(&opts.docsURL, "docs-url", docs.DefaultBaseURL, "documentation host")
	opts.syncOptions.register(cmd)

	return cmd
}

func (c *CLI) runOpen(cmd *cobra.Command, args []string, opts openOptions) error {
	ctx := cmd.Context()

	svc, err := c.selectService(ctx, args)
	if err != nil {
		return err
	}

	var version resolver.Version
	if opts.sync {
		if version, err = c.resolveVersion(ctx, cmd, svc, opts.syncOptions); err != nil {
			return err
		}
	}

	u, err := docs.URL(opts.docsURL, svc.Name(), version.String())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.print || !c.config.Open {
		fmt.Fprintln(out, u)
		return nil
	}

	printSuccess(out, "%s %s", svc, StyleHighlight.Render(version.String()))
	printLink(out, u)
	if err := c.open(u); err != nil {
		printWarning(cmd.ErrOrStderr(), "Could not open a browser, copy the URL above")
		return errors.Wrap(errors.ErrCodeUnsupported, err, "open browser")
	}
	return nil
}

// selectService looks up the service named in args, or asks for one.
func (c *CLI) selectService(ctx context.Context, args []string) (catalog.Service, error) {
	if len(args) > 0 {
		return lookupService(args[0])
	}
	if !c.stdinIsTerminal() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "no service given and stdin is not a terminal")
	}
	return c.pick(ctx)
}

func lookupService(name string) (catalog.Service, error) {
	svc, ok := catalog.Lookup(name)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "unknown service %q (see %q)", name, appName+" list")
	}
	return svc, nil
}

// resolveVersion loads the project's dependency graph and resolves the
// installed version of svc's client crate.
func (c *CLI) resolveVersion(ctx context.Context, cmd *cobra.Command, svc catalog.Service, opts syncOptions) (resolver.Version, error) {
	logger := loggerFromContext(ctx)

	loader, err := c.loader(ctx, opts)
	if err != nil {
		return resolver.Version{}, err
	}

	var spin *Spinner
	if c.stderrIsTerminal() {
		spin = newSpinner(ctx, cmd.ErrOrStderr(), "Loading dependency graph...")
		spin.Start()
	}
	prog := newProgress(logger)
	version, err := resolver.ResolveFrom(ctx, svc, loader)
	if err != nil {
		if spin != nil {
			spin.StopWithError("Could not load the dependency graph")
		}
		return resolver.Version{}, err
	}
	if spin != nil {
		spin.Stop()
	}

	if version.IsLatest() {
		logger.Warnf("%s is not a dependency of this project, using %s", svc.Crate(), resolver.Latest)
		return version, nil
	}
	prog.done(fmt.Sprintf("Resolved %s %s", svc.Crate(), version))
	logDependency(logger, svc, loader.result)
	return version, nil
}

// logDependency reports at debug level whether the matched crate is a
// direct dependency of the project and how it is reached.
func logDependency(logger *log.Logger, svc catalog.Service, res *deps.ManifestResult) {
	if res == nil {
		return
	}
	m := resolver.Locate(svc, res)
	if m.ID == "" {
		return
	}
	kind := "transitive"
	if res.Direct(m.ID) {
		kind = "direct"
	}
	logger.Debug("dependency", "package", m.ID, "kind", kind, "path", strings.Join(res.Path(m.ID), " -> "))
}

// manifestLoader parses one manifest and keeps the result for inspection
// after resolution.
type manifestLoader struct {
	parser deps.ManifestParser
	path   string
	opts   deps.Options
	result *deps.ManifestResult
}

func (l *manifestLoader) Load(ctx context.Context) (resolver.Graph, error) {
	res, err := l.parser.Parse(ctx, l.path, l.opts)
	if err != nil {
		return nil, err
	}
	l.result = res
	return res, nil
}

// loader returns a graph loader for the manifest selected by opts.
func (c *CLI) loader(ctx context.Context, opts syncOptions) (*manifestLoader, error) {
	path := opts.manifestPath
	if opts.lockfile && !strings.EqualFold(filepath.Base(path), rust.LockfileName) {
		start := path
		if start == "" {
			start = "."
		}
		lock, err := rust.FindLockfile(start)
		if err != nil {
			return nil, err
		}
		path = lock
	}

	parser, err := deps.DetectManifest(path, c.parsers()...)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("manifest", "parser", parser.Type(), "path", path)

	return &manifestLoader{
		parser: parser,
		path:   path,
		opts: deps.Options{
			Cargo:   opts.cargo,
			Offline: opts.offline,
			Locked:  opts.locked,
			Logger:  loggerFromContext(ctx).Debugf,
		},
	}, nil
}
