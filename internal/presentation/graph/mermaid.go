package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/teamtree/pkg/domain"
)

// Highlight marks employees to emphasize in the diagram.
type Highlight struct {
	Names []string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) of the hierarchy.
// Node IDs are positional (n0, n1, ...) in pre-order so that duplicate names
// stay distinct. The root is drawn as a stadium; edges are labeled with the
// report side.
func GenerateMermaid(root *domain.Node, highlight *Highlight) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if root == nil {
		return sb.String()
	}

	ids := make(map[*domain.Node]string)
	var names []string
	var visit func(n *domain.Node)
	visit = func(n *domain.Node) {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		names = append(names, n.Name)

		label := escapeLabel(n.Name)
		if n == root {
			sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", id, label))
		} else {
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))
		}

		for _, child := range []struct {
			node *domain.Node
			side domain.Side
		}{{n.Left, domain.SideLeft}, {n.Right, domain.SideRight}} {
			if child.node == nil {
				continue
			}
			visit(child.node)
			sb.WriteString(fmt.Sprintf("    %s -- %s --> %s\n", id, child.side, ids[child.node]))
		}
	}
	visit(root)

	if highlight != nil && len(highlight.Names) > 0 {
		want := make(map[string]bool, len(highlight.Names))
		for _, n := range highlight.Names {
			want[n] = true
		}
		sb.WriteString("\n    %% Highlights\n")
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		for i, name := range names {
			if want[name] {
				sb.WriteString(fmt.Sprintf("    class n%d highlight;\n", i))
			}
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
