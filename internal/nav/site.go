package nav

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// RawNode is a nav or sidebar element as written by the author. A node with an
// items list is a group; anything else is a leaf.
type RawNode struct {
	Text  string    `json:"text" yaml:"text"`
	Link  string    `json:"link,omitempty" yaml:"link,omitempty"`
	Items []RawNode `json:"items,omitempty" yaml:"items,omitempty"`
}

func (n RawNode) isGroup() bool {
	return n.Items != nil
}

// rawGroup is the encoded form of a group. Items is always written, even when
// empty, so an empty group decodes as a group again.
type rawGroup struct {
	Text  string    `json:"text" yaml:"text"`
	Link  string    `json:"link,omitempty" yaml:"link,omitempty"`
	Items []RawNode `json:"items" yaml:"items"`
}

type rawLeaf struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

func (n RawNode) encoded() any {
	if n.isGroup() {
		return rawGroup{Text: n.Text, Link: n.Link, Items: n.Items}
	}
	return rawLeaf{Text: n.Text, Link: n.Link}
}

func (n RawNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.encoded())
}

func (n RawNode) MarshalYAML() (any, error) {
	return n.encoded(), nil
}

// Raw is the unvalidated site descriptor handed to Build.
type Raw struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Nav         []RawNode       `json:"nav" yaml:"nav"`
	Sidebar     []RawNode       `json:"sidebar" yaml:"sidebar"`
	SocialLinks []RawSocialLink `json:"social_links" yaml:"social_links"`
}

// Site is a validated, immutable navigation descriptor. Accessors return copies.
type Site struct {
	title       string
	description string
	nav         []Entry
	sidebar     Tree
	socialLinks []SocialLink
	warnings    Violations
}

func (s *Site) Title() string       { return s.title }
func (s *Site) Description() string { return s.description }

// Nav returns the flat top navigation in render order.
func (s *Site) Nav() []Entry { return slices.Clone(s.nav) }

// Sidebar returns the sidebar tree. Trees are values with no exported mutators.
func (s *Site) Sidebar() Tree { return s.sidebar }

// SocialLinks returns the social links in render order.
func (s *Site) SocialLinks() []SocialLink { return slices.Clone(s.socialLinks) }

// Warnings returns the non-blocking violations found while building.
func (s *Site) Warnings() Violations { return slices.Clone(s.warnings) }

// Raw converts the site back to its raw form. Building the result again yields
// an equivalent Site with no errors.
func (s *Site) Raw() Raw {
	raw := Raw{
		Title:       s.title,
		Description: s.description,
	}
	for _, e := range s.nav {
		raw.Nav = append(raw.Nav, RawNode{Text: e.Label, Link: e.Path})
	}
	raw.Sidebar = rawNodes(s.sidebar.nodes)
	for _, l := range s.socialLinks {
		raw.SocialLinks = append(raw.SocialLinks, RawSocialLink{Icon: string(l.Icon), Link: l.Link})
	}
	return raw
}

func rawNodes(nodes []Node) []RawNode {
	out := make([]RawNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case Leaf:
			out = append(out, RawNode{Text: n.entry.Label, Link: n.entry.Path})
		case Group:
			out = append(out, RawNode{Text: n.label, Items: rawNodes(n.children)})
		}
	}
	return out
}

// Build validates raw and returns the immutable Site. All violations are
// collected before returning. If any has error severity Build returns a nil
// Site and the complete Violations (warnings included) as the error; otherwise
// warnings are available from Site.Warnings.
func Build(raw Raw, opts Options) (*Site, error) {
	b := &builder{opts: opts}
	site := &Site{
		title:       raw.Title,
		description: raw.Description,
	}

	b.requireField(LocTitle, raw.Title)
	b.requireField(LocDescription, raw.Description)
	site.nav = b.buildNav(raw.Nav)
	site.sidebar = b.buildSidebar(raw.Sidebar)
	site.socialLinks = b.buildSocialLinks(raw.SocialLinks)

	if b.violations.HasErrors() {
		return nil, b.violations
	}
	site.warnings = b.violations
	return site, nil
}

type builder struct {
	opts       Options
	violations Violations
}

func (b *builder) add(vs ...Violation) {
	b.violations = append(b.violations, vs...)
}

func (b *builder) requireField(loc Location, value string) {
	if isBlank(value) {
		b.add(Violation{
			Location: loc,
			Kind:     KindMissingField,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s is empty", loc),
		})
	}
}

func (b *builder) buildNav(raw []RawNode) []Entry {
	entries := make([]Entry, 0, len(raw))
	locs := make([]Location, 0, len(raw))
	for i, n := range raw {
		loc := LocNav.Index(i)
		if n.isGroup() {
			b.add(Violation{
				Location: loc,
				Kind:     KindNestedNav,
				Severity: SeverityError,
				Message:  fmt.Sprintf("top navigation must be flat; %q has items", n.Text),
			})
			continue
		}
		e := Entry{Label: n.Text, Path: n.Link}
		b.add(checkEntry(loc, e, b.opts)...)
		entries = append(entries, e)
		locs = append(locs, loc)
	}
	b.checkLabels(raw, LocNav)
	b.checkDuplicatePaths(locs, entries)

	if limit := b.opts.MaxNavItems; limit > 0 && len(raw) > limit {
		b.add(Violation{
			Location: LocNav,
			Kind:     KindNavTooLong,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("top navigation has %d items; keep it to %d or fewer", len(raw), limit),
		})
	}
	return entries
}

func (b *builder) buildSidebar(raw []RawNode) Tree {
	tree := NewTree(b.sidebarNodes(LocSidebar, raw)...)

	var locs []Location
	var entries []Entry
	for loc, e := range tree.All() {
		locs = append(locs, loc)
		entries = append(entries, e)
	}
	b.checkDuplicatePaths(locs, entries)
	return tree
}

func (b *builder) sidebarNodes(parent Location, raw []RawNode) []Node {
	nodes := make([]Node, 0, len(raw))
	for i, n := range raw {
		loc := parent.Index(i)
		if !n.isGroup() {
			e := Entry{Label: n.Text, Path: n.Link}
			b.add(checkEntry(loc, e, b.opts)...)
			nodes = append(nodes, Leaf{entry: e})
			continue
		}
		if isBlank(n.Text) {
			b.add(Violation{Location: loc, Kind: KindEmptyLabel, Severity: SeverityError, Message: "group label is empty"})
		}
		if n.Link != "" {
			b.add(Violation{
				Location: loc,
				Kind:     KindMalformedPath,
				Severity: SeverityError,
				Message:  fmt.Sprintf("group %q has both a link and items; link a child entry instead", n.Text),
			})
		}
		if len(n.Items) == 0 {
			b.add(Violation{Location: loc, Kind: KindEmptyGroup, Severity: SeverityWarning, Message: fmt.Sprintf("group %q has no items", n.Text)})
		}
		// children are appended in walk order so violations read top to bottom
		children := b.sidebarNodes(loc.Field("items"), n.Items)
		nodes = append(nodes, Group{label: n.Text, children: children})
	}
	b.checkLabels(raw, parent)
	return nodes
}

// checkLabels reports labels repeated among siblings.
func (b *builder) checkLabels(siblings []RawNode, parent Location) {
	seen := make(map[string]int, len(siblings))
	for i, n := range siblings {
		label := strings.TrimSpace(n.Text)
		if label == "" {
			continue
		}
		if first, dup := seen[label]; dup {
			b.add(Violation{
				Location: parent.Index(i),
				Kind:     KindDuplicateLabel,
				Severity: b.opts.labelSeverity(),
				Message:  fmt.Sprintf("label %q is also used by %s", label, parent.Index(first)),
				Related:  parent.Index(first),
			})
			continue
		}
		seen[label] = i
	}
}

// checkDuplicatePaths reports every later occurrence of a path, pointing back at
// the first one.
func (b *builder) checkDuplicatePaths(locs []Location, entries []Entry) {
	first := make(map[string]Location, len(entries))
	for i, e := range entries {
		if e.Path == "" {
			continue
		}
		key := canonicalPath(e.Path)
		if at, dup := first[key]; dup {
			b.add(Violation{
				Location: locs[i],
				Kind:     KindDuplicatePath,
				Severity: SeverityError,
				Message:  fmt.Sprintf("path %q is also used by %s", e.Path, at),
				Related:  at,
			})
			continue
		}
		first[key] = locs[i]
	}
}

func (b *builder) buildSocialLinks(raw []RawSocialLink) []SocialLink {
	icons := IconSet(b.opts)
	links := make([]SocialLink, 0, len(raw))
	for i, r := range raw {
		link, vs := checkSocialLink(LocSocialLinks.Index(i), r, icons)
		b.add(vs...)
		links = append(links, link)
	}
	return links
}
