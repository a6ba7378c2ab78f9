package hierarchy

import (
	"iter"

	"github.com/aretw0/teamtree/pkg/domain"
)

// Tree owns the root node and, transitively, the whole hierarchy.
type Tree struct {
	root *domain.Node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewWithRoot creates a tree whose root is the given team lead.
func NewWithRoot(name string) *Tree {
	t := New()
	_ = t.SetRoot(name)
	return t
}

// FromChart rebuilds a tree from a persisted chart. The chart is copied.
func FromChart(c *domain.Chart) *Tree {
	t := New()
	if c == nil || c.Root == nil {
		return t
	}
	t.root = c.Root.Clone()
	t.size = count(t.root)
	return t
}

// SetRoot installs the team lead. It is the only way a tree leaves the empty state.
func (t *Tree) SetRoot(name string) error {
	if t.root != nil {
		return domain.ErrRootExists
	}
	t.root = domain.NewNode(name)
	t.size = 1
	return nil
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.size
}

// RootName returns the team lead's name, or "" for an empty tree.
func (t *Tree) RootName() string {
	if t.root == nil {
		return ""
	}
	return t.root.Name
}

// Snapshot returns a deep copy of the hierarchy under the given chart ID.
func (t *Tree) Snapshot(id string) *domain.Chart {
	return &domain.Chart{ID: id, Root: t.root.Clone()}
}

// Insert attaches employee as the side report of the first node named manager.
// The tree gains exactly one node when the outcome is OutcomeInserted and is left
// untouched otherwise.
func (t *Tree) Insert(manager, employee string, side domain.Side) domain.Outcome {
	out := domain.Outcome{Manager: manager, Employee: employee, Side: side}

	switch {
	case t.root == nil:
		out.Kind = domain.OutcomeEmptyTree
		return out
	case !side.Valid():
		out.Kind = domain.OutcomeInvalidSide
		return out
	}

	res := search(t.root, manager, func(n *domain.Node) domain.OutcomeKind {
		slot := &n.Left
		if side == domain.SideRight {
			slot = &n.Right
		}
		if *slot != nil {
			return domain.OutcomeSlotOccupied
		}
		*slot = domain.NewNode(employee)
		return domain.OutcomeInserted
	})

	if !res.found {
		out.Kind = domain.OutcomeManagerNotFound
		return out
	}
	if res.kind == domain.OutcomeInserted {
		t.size++
	}
	out.Kind = res.kind
	return out
}

// Render yields (depth, name) pairs in pre-order, with the root at depth 0.
// Each call starts a fresh walk. An empty tree yields nothing.
func (t *Tree) Render() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		walk(t.root, 0, func(n *domain.Node, depth int) bool {
			return yield(depth, n.Name)
		})
	}
}

// Entry is a materialized element of Render.
type Entry struct {
	Depth int    `json:"depth"`
	Name  string `json:"name"`
}

// Entries collects Render into a slice.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, 0, t.size)
	for depth, name := range t.Render() {
		entries = append(entries, Entry{Depth: depth, Name: name})
	}
	return entries
}
