package hugo

import (
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Menu names used in the exported configuration.
const (
	MenuMain    = "main"
	MenuSidebar = "sidebar"
)

const weightStep = 10

// MenuItem is one Hugo menu entry. Groups become entries without a URL that
// their children reference through Parent.
type MenuItem struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url,omitempty"`
	Weight     int    `yaml:"weight"`
	Parent     string `yaml:"parent,omitempty"`
}

// Menus converts the site's navigation into Hugo menus keyed by menu name.
// Weights follow declaration order among siblings.
func Menus(site *nav.Site) map[string][]MenuItem {
	menus := map[string][]MenuItem{}

	entries := site.Nav()
	main := make([]MenuItem, 0, len(entries))
	for i, e := range entries {
		main = append(main, MenuItem{
			Identifier: identifier(nav.LocNav.Index(i)),
			Name:       e.Label,
			URL:        e.Path,
			Weight:     (i + 1) * weightStep,
		})
	}
	menus[MenuMain] = main

	var sidebar []MenuItem
	for loc, node := range site.Sidebar().Walk(nav.LocSidebar) {
		item := MenuItem{
			Identifier: identifier(loc),
			Name:       node.Label(),
			Weight:     (lastIndex(loc) + 1) * weightStep,
			Parent:     parentIdentifier(loc),
		}
		if leaf, ok := node.(nav.Leaf); ok {
			item.URL = leaf.Entry().Path
		}
		sidebar = append(sidebar, item)
	}
	menus[MenuSidebar] = sidebar

	return menus
}

// identifier turns "sidebar[1].items[0]" into "sidebar-1-items-0".
func identifier(loc nav.Location) string {
	r := strings.NewReplacer("[", "-", "]", "", ".", "-")
	return r.Replace(string(loc))
}

func parentIdentifier(loc nav.Location) string {
	s := string(loc)
	i := strings.LastIndex(s, ".items[")
	if i < 0 {
		return ""
	}
	return identifier(nav.Location(s[:i]))
}

func lastIndex(loc nav.Location) int {
	s := string(loc)
	open := strings.LastIndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return 0
	}
	n := 0
	for _, c := range s[open+1 : len(s)-1] {
		n = n*10 + int(c-'0')
	}
	return n
}
