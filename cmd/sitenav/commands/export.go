package commands

import (
	"bytes"
	"log/slog"
	"os"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/hugo"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Output string `short:"o" help:"Write the Hugo configuration fragment to this file instead of stdout"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	_, site, err := loadSite(g, root)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := hugo.WriteConfig(&buf, site); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal Hugo config").Build()
	}

	if e.Output == "" {
		_, err := g.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(e.Output, buf.Bytes(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write Hugo config").
			WithContext(logfields.KeyPath, e.Output).
			Build()
	}
	slog.Info("Exported Hugo menus", logfields.Path(e.Output), logfields.Entries(site.Sidebar().Len()))
	return nil
}
