package ports

import (
	"context"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
)

// Charts is the driving port served by the transports (CLI, HTTP, MCP).
// *registry.Registry satisfies it.
type Charts interface {
	// Create stores a new chart led by root.
	// Returns domain.ErrRootExists if the chart already has a root.
	Create(ctx context.Context, id, root string) (*hierarchy.Tree, error)

	// Insert attaches employee under the first manager match of chart id.
	Insert(ctx context.Context, id, manager, employee string, side domain.Side) (domain.Outcome, error)

	// Get loads a chart. Returns domain.ErrChartNotFound if it does not exist.
	Get(ctx context.Context, id string) (*hierarchy.Tree, error)

	// List returns the IDs of all stored charts.
	List(ctx context.Context) ([]string, error)
}
