package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/report"
)

// Global carries the output streams shared by all commands.
type Global struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewGlobal returns a Global bound to the process streams.
func NewGlobal() *Global {
	return &Global{Stdout: os.Stdout, Stderr: os.Stderr}
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitenav.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate     ValidateCmd     `cmd:"" default:"1" help:"Validate the site navigation and print a report"`
	Init         InitCmd         `cmd:"" help:"Initialize a new configuration file"`
	Tree         TreeCmd         `cmd:"" help:"Print the sidebar tree"`
	Export       ExportCmd       `cmd:"" help:"Export the navigation as a Hugo menu configuration"`
	CheckContent CheckContentCmd `cmd:"" name:"check-content" help:"Check that every sidebar entry has a markdown document"`
	Watch        WatchCmd        `cmd:"" help:"Rebuild the navigation whenever the configuration changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadSite loads the configuration and builds the site. When the build fails
// with violations, the report is written to stderr and a validation error
// without the violation list is returned.
func loadSite(g *Global, root *CLI) (*config.Config, *nav.Site, error) {
	cfg, site, err := config.LoadSite(root.Config)
	useConfigLogger(g, cfg, root.Verbose)
	if err != nil {
		var vs nav.Violations
		if !errors.As(err, &vs) {
			return nil, nil, err
		}
		res := &report.Result{Source: root.Config, Entries: countLeaves(cfg.Sidebar), Issues: report.FromViolations(vs)}
		if ferr := report.NewTextFormatter().Format(g.Stderr, res); ferr != nil {
			return nil, nil, ferrors.WrapError(ferr, ferrors.CategoryInternal, "failed to write report").Build()
		}
		return cfg, nil, violationsError(res)
	}

	for _, w := range site.Warnings() {
		slog.Warn(w.Message,
			logfields.Location(string(w.Location)),
			logfields.Kind(string(w.Kind)))
	}
	return cfg, site, nil
}

// useConfigLogger replaces the bootstrap logger with one honoring the
// configuration's logging section.
func useConfigLogger(g *Global, cfg *config.Config, verbose bool) {
	if cfg == nil {
		return
	}
	slog.SetDefault(config.NewLogger(g.Stderr, cfg.Logging, verbose))
}

func violationsError(res *report.Result) error {
	return ferrors.ValidationError(fmt.Sprintf("%s has %d error%s", res.Source, res.ErrorCount(), plural(res.ErrorCount()))).
		WithContext(logfields.KeyConfigPath, res.Source).
		Build()
}

func countLeaves(nodes []nav.RawNode) int {
	n := 0
	for _, node := range nodes {
		if node.Items != nil {
			n += countLeaves(node.Items)
			continue
		}
		n++
	}
	return n
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
