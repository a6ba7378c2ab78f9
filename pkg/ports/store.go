package ports

import (
	"context"

	"github.com/aretw0/teamtree/pkg/domain"
)

// ChartStore defines the interface for persisting team charts between runs.
type ChartStore interface {
	// Save persists the chart under chart.ID, replacing any previous version.
	Save(ctx context.Context, chart *domain.Chart) error

	// Load retrieves the chart with the given ID.
	// Returns domain.ErrChartNotFound if the chart does not exist.
	Load(ctx context.Context, id string) (*domain.Chart, error)

	// Delete removes the chart. Deleting a missing chart is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored charts.
	List(ctx context.Context) ([]string, error)
}
