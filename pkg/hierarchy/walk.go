package hierarchy

import "github.com/aretw0/teamtree/pkg/domain"

// result is the tagged value of a manager search: either nothing matched, or
// the first match produced a terminal outcome and the walk stopped there.
type result struct {
	found bool
	kind  domain.OutcomeKind
}

var notFound = result{}

func terminal(kind domain.OutcomeKind) result {
	return result{found: true, kind: kind}
}

// search walks n in pre-order and applies act to the first node named name.
func search(n *domain.Node, name string, act func(*domain.Node) domain.OutcomeKind) result {
	if n == nil {
		return notFound
	}
	if n.Name == name {
		return terminal(act(n))
	}
	if r := search(n.Left, name, act); r.found {
		return r
	}
	return search(n.Right, name, act)
}

// walk visits n in pre-order until visit returns false. It reports whether the
// walk ran to completion.
func walk(n *domain.Node, depth int, visit func(*domain.Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n, depth) {
		return false
	}
	return walk(n.Left, depth+1, visit) && walk(n.Right, depth+1, visit)
}

func count(n *domain.Node) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.Left) + count(n.Right)
}
