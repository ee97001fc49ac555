package nav

import (
	"iter"
	"slices"

	"git.home.luguber.info/inful/sitenav/internal/util/sets"
)

// Node is one element of a sidebar: a Leaf or a Group.
type Node interface {
	Label() string
	isNode()
}

// Leaf is a navigable sidebar entry.
type Leaf struct {
	entry Entry
}

// NewLeaf creates a leaf node.
func NewLeaf(label, path string) Leaf {
	return Leaf{entry: Entry{Label: label, Path: path}}
}

func (l Leaf) Label() string { return l.entry.Label }
func (l Leaf) Entry() Entry  { return l.entry }
func (Leaf) isNode()         {}

// Group is a labeled, ordered collection of child nodes.
type Group struct {
	label    string
	children []Node
}

// NewGroup creates a group. The children are copied, so later changes to the
// argument slice do not reach the group.
func NewGroup(label string, children ...Node) Group {
	return Group{label: label, children: slices.Clone(children)}
}

func (g Group) Label() string { return g.label }

// Children returns a copy of the group's direct children.
func (g Group) Children() []Node { return slices.Clone(g.children) }
func (Group) isNode()            {}

// Tree is an ordered sidebar. Order is rendering order.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree from top-level nodes, copying the slice.
func NewTree(nodes ...Node) Tree {
	return Tree{nodes: slices.Clone(nodes)}
}

// Nodes returns a copy of the top-level nodes.
func (t Tree) Nodes() []Node { return slices.Clone(t.nodes) }

// Walk yields every node depth-first in declaration order, groups before their
// children, with locations rooted at root.
func (t Tree) Walk(root Location) iter.Seq2[Location, Node] {
	return func(yield func(Location, Node) bool) {
		walkNodes(root, t.nodes, yield)
	}
}

func walkNodes(loc Location, nodes []Node, yield func(Location, Node) bool) bool {
	for i, n := range nodes {
		at := loc.Index(i)
		if !yield(at, n) {
			return false
		}
		if g, ok := n.(Group); ok {
			if !walkNodes(at.Field("items"), g.children, yield) {
				return false
			}
		}
	}
	return true
}

// All yields every leaf entry with its sidebar location.
func (t Tree) All() iter.Seq2[Location, Entry] {
	return func(yield func(Location, Entry) bool) {
		for loc, n := range t.Walk(LocSidebar) {
			if l, ok := n.(Leaf); ok && !yield(loc, l.entry) {
				return
			}
		}
	}
}

// Flatten yields the leaf entries depth-first in declaration order. The
// sequence can be ranged over any number of times.
func (t Tree) Flatten() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range t.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of leaves.
func (t Tree) Len() int {
	n := 0
	for range t.Flatten() {
		n++
	}
	return n
}

// Depth is 0 for an empty tree, 1 for a flat list, plus one per level of groups.
func (t Tree) Depth() int {
	return depth(t.nodes)
}

func depth(nodes []Node) int {
	deepest := 0
	for _, n := range nodes {
		d := 1
		if g, ok := n.(Group); ok {
			d += depth(g.children)
		}
		deepest = max(deepest, d)
	}
	return deepest
}

// FindDuplicatePaths returns every path used by more than one leaf. Paths are
// compared after percent-decoding and NFC normalization; the returned spelling
// is that of the first occurrence.
func (t Tree) FindDuplicatePaths() sets.Set[string] {
	return duplicatePaths(t.Flatten())
}

func duplicatePaths(entries iter.Seq[Entry]) sets.Set[string] {
	first := make(map[string]string)
	freq := make(map[string]int)
	for e := range entries {
		if e.Path == "" {
			continue
		}
		key := canonicalPath(e.Path)
		if _, seen := first[key]; !seen {
			first[key] = e.Path
		}
		freq[key]++
	}
	dups := sets.New[string]()
	for key, n := range freq {
		if n > 1 {
			dups.Add(first[key])
		}
	}
	return dups
}
