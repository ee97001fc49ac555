package commands

import (
	"errors"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/report"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, site, err := config.LoadSite(root.Config)

	var vs nav.Violations
	switch {
	case err == nil:
		vs = site.Warnings()
	case errors.As(err, &vs):
	default:
		return err
	}
	useConfigLogger(g, cfg, root.Verbose)

	res := &report.Result{
		Source:  root.Config,
		Entries: countLeaves(cfg.Sidebar),
		Issues:  report.FromViolations(vs),
	}
	if err := report.NewFormatter(v.Format).Format(g.Stdout, res); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to write report").Build()
	}
	if res.HasErrors() {
		return violationsError(res)
	}
	return nil
}
