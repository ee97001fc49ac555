package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitenav/internal/contentcheck"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/report"
)

// CheckContentCmd implements the 'check-content' command.
type CheckContentCmd struct {
	Root   string `short:"r" required:"" help:"Content root directory holding the markdown documents"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (c *CheckContentCmd) Run(g *Global, root *CLI) error {
	_, site, err := loadSite(g, root)
	if err != nil {
		return err
	}

	issues, err := contentcheck.Check(c.Root, site)
	if err != nil {
		return err
	}
	res := &report.Result{Source: root.Config, Entries: site.Sidebar().Len(), Issues: issues}
	if err := report.NewFormatter(c.Format).Format(g.Stdout, res); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to write report").Build()
	}
	if res.HasErrors() {
		return ferrors.ValidationError(fmt.Sprintf("%d sidebar entr%s without a document under %s",
			res.ErrorCount(), pluralEntries(res.ErrorCount()), c.Root)).Build()
	}
	return nil
}
