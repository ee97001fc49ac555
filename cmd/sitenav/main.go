package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitenav/cmd/sitenav/commands"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("sitenav"),
		kong.Description("Validate, inspect and export a documentation site's navigation"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := parser.Run(commands.NewGlobal(), cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
