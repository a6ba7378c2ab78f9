package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
	"github.com/aretw0/teamtree/pkg/plan"
)

// Builder records a root and an ordered list of insertions.
type Builder struct {
	name  string
	root  string
	steps []plan.Step
}

// New creates a builder for a chart led by root.
func New(root string) *Builder {
	return &Builder{root: root}
}

// Named sets the plan name shown as the title of rendered output.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// Manager starts adding reports under the first employee named name.
func (b *Builder) Manager(name string) *ManagerBuilder {
	return &ManagerBuilder{manager: name, builder: b}
}

// Plan returns the recorded insertions as a plan.
func (b *Builder) Plan() *plan.Plan {
	steps := make([]plan.Step, len(b.steps))
	copy(steps, b.steps)
	return &plan.Plan{
		Name:    b.name,
		Root:    b.root,
		Inserts: steps,
	}
}

// Build applies the plan to a fresh tree. Every step must insert; rejected
// steps are joined into the returned error, and the tree holds the rest.
func (b *Builder) Build() (*hierarchy.Tree, error) {
	tree := hierarchy.New()
	results, err := plan.Apply(tree, b.Plan())
	if err != nil {
		return nil, fmt.Errorf("failed to build chart: %w", err)
	}

	var errs []error
	for _, r := range results {
		if err := r.Outcome.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return tree, errors.Join(errs...)
}

// ManagerBuilder adds direct reports to one manager.
type ManagerBuilder struct {
	manager string
	builder *Builder
}

// Left adds employee as the manager's left report.
func (m *ManagerBuilder) Left(employee string) *ManagerBuilder {
	return m.Report(employee, domain.SideLeft)
}

// Right adds employee as the manager's right report.
func (m *ManagerBuilder) Right(employee string) *ManagerBuilder {
	return m.Report(employee, domain.SideRight)
}

// Report adds employee on an explicit side. Invalid sides are recorded as
// given and surface as InvalidSide when built.
func (m *ManagerBuilder) Report(employee string, side domain.Side) *ManagerBuilder {
	m.builder.steps = append(m.builder.steps, plan.Step{
		Manager:  m.manager,
		Employee: employee,
		Side:     side,
	})
	return m
}

// Manager switches to another manager on the same builder.
func (m *ManagerBuilder) Manager(name string) *ManagerBuilder {
	return m.builder.Manager(name)
}
