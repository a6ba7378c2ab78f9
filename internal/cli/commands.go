package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/teamtree/internal/presentation/graph"
	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
	"github.com/aretw0/teamtree/pkg/plan"
	"github.com/aretw0/teamtree/pkg/ports"
)

// Init creates a chart with its team lead.
func Init(ctx context.Context, charts ports.Charts, w io.Writer, chart, root string) error {
	if _, err := charts.Create(ctx, chart, root); err != nil {
		if errors.Is(err, domain.ErrRootExists) {
			return fmt.Errorf("chart %q already has a team lead", chart)
		}
		return err
	}
	fmt.Fprintf(w, "👤 %s is the team lead of %q.\n", root, chart)
	return nil
}

// Add inserts one report and prints the outcome message. Non-success outcomes
// are returned as errors after being printed.
func Add(ctx context.Context, charts ports.Charts, w io.Writer, chart, manager, employee, side string) error {
	out, err := charts.Insert(ctx, chart, manager, employee, domain.ParseSide(side))
	if err != nil {
		return err
	}
	tui.NewPrinter(w).Outcome(out)
	return out.Err()
}

// ShowOptions controls Show output.
type ShowOptions struct {
	Pretty bool
	Title  string
}

// Show prints a chart. Pretty mode renders it as markdown through glamour.
func Show(ctx context.Context, charts ports.Charts, w io.Writer, chart string, opts ShowOptions) error {
	tree, err := charts.Get(ctx, chart)
	if err != nil {
		if errors.Is(err, domain.ErrChartNotFound) {
			fmt.Fprintln(w, tui.NoStructure)
			return nil
		}
		return err
	}
	return writeTree(w, tree, opts)
}

// Graph prints the Mermaid diagram of a chart.
func Graph(ctx context.Context, charts ports.Charts, w io.Writer, chart string, highlight []string) error {
	tree, err := charts.Get(ctx, chart)
	if err != nil {
		return err
	}
	var hl *graph.Highlight
	if len(highlight) > 0 {
		hl = &graph.Highlight{Names: highlight}
	}
	_, err = fmt.Fprint(w, graph.GenerateMermaid(tree.Snapshot(chart).Root, hl))
	return err
}

// List prints stored chart IDs, one per line.
func List(ctx context.Context, charts ports.Charts, w io.Writer) error {
	ids, err := charts.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	return nil
}

// RunPlan replays a plan. With a chart ID the steps go through the service and
// are persisted; without one they run on a throwaway tree. The resulting
// hierarchy is printed at the end.
func RunPlan(ctx context.Context, charts ports.Charts, w io.Writer, chart string, p *plan.Plan, opts ShowOptions) error {
	printer := tui.NewPrinter(w)

	if chart == "" {
		tree := hierarchy.New()
		results, err := plan.Apply(tree, p)
		if err != nil {
			return err
		}
		for _, r := range results {
			printer.Outcome(r.Outcome)
		}
		fmt.Fprintln(w)
		return writeTree(w, tree, opts)
	}

	if p.Root != "" {
		_, err := charts.Create(ctx, chart, p.Root)
		switch {
		case errors.Is(err, domain.ErrRootExists):
			// Roots never change, so the stored one can be checked outside the lock.
			tree, err := charts.Get(ctx, chart)
			if err != nil {
				return err
			}
			if err := plan.CheckRoot(p, tree.RootName()); err != nil {
				return err
			}
		case err != nil:
			return err
		}
	}
	for _, s := range p.Inserts {
		out, err := charts.Insert(ctx, chart, s.Manager, s.Employee, s.Side)
		if err != nil {
			return err
		}
		printer.Outcome(out)
	}
	fmt.Fprintln(w)
	return Show(ctx, charts, w, chart, opts)
}

func writeTree(w io.Writer, tree *hierarchy.Tree, opts ShowOptions) error {
	if !opts.Pretty {
		return tui.WriteTree(w, tree)
	}
	render, err := tui.NewRenderer()
	if err != nil {
		return err
	}
	out, err := render(tui.Markdown(opts.Title, tree))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
