package commands

import (
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// TreeCmd implements the 'tree' command.
type TreeCmd struct {
	Paths bool `default:"true" negatable:"" help:"Show entry paths next to labels"`
}

func (t *TreeCmd) Run(g *Global, root *CLI) error {
	_, site, err := loadSite(g, root)
	if err != nil {
		return err
	}
	tree := site.Sidebar()
	if _, err := fmt.Fprintln(g.Stdout, site.Title()); err != nil {
		return err
	}
	if err := t.printNodes(g.Stdout, tree.Nodes(), ""); err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.Stdout, "\n%d entr%s, depth %d\n", tree.Len(), pluralEntries(tree.Len()), tree.Depth())
	return err
}

func (t *TreeCmd) printNodes(w io.Writer, nodes []nav.Node, prefix string) error {
	for i, n := range nodes {
		branch, indent := "├── ", "│   "
		if i == len(nodes)-1 {
			branch, indent = "└── ", "    "
		}
		line := prefix + branch + n.Label()
		switch node := n.(type) {
		case nav.Leaf:
			if t.Paths {
				line += "  " + node.Entry().Path
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		case nav.Group:
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
			if err := t.printNodes(w, node.Children(), prefix+indent); err != nil {
				return err
			}
		}
	}
	return nil
}

func pluralEntries(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
