package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	slog.Debug("Initializing configuration", logfields.ConfigPath(root.Config), slog.Bool("force", i.Force))
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Stdout, "Wrote example configuration to %s\n", root.Config)
	return err
}
