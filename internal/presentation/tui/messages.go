package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/muesli/termenv"
)

// Message turns an insertion outcome into the user-facing sentence.
func Message(out domain.Outcome) string {
	switch out.Kind {
	case domain.OutcomeInserted:
		return fmt.Sprintf("✅ %s added to %s of %s.", out.Employee, out.Side.Label(), out.Manager)
	case domain.OutcomeSlotOccupied:
		return fmt.Sprintf("⚠️ %s already has a %s report.", out.Manager, out.Side.Label())
	case domain.OutcomeInvalidSide:
		return "❌ Side must be 'left' or 'right'."
	case domain.OutcomeManagerNotFound:
		return fmt.Sprintf("❌ Manager '%s' not found in the team.", out.Manager)
	case domain.OutcomeEmptyTree:
		return "⚠️ No team lead found. Add a root first."
	}
	return fmt.Sprintf("unknown outcome %q", out.Kind)
}

// Printer writes outcome messages, colored by severity when the writer is a terminal.
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w)}
}

// Outcome prints one outcome message.
func (p *Printer) Outcome(o domain.Outcome) {
	color := "#ef4444"
	switch o.Kind {
	case domain.OutcomeInserted:
		color = "#22c55e"
	case domain.OutcomeSlotOccupied, domain.OutcomeEmptyTree:
		color = "#eab308"
	}
	fmt.Fprintln(p.w, p.out.String(Message(o)).Foreground(p.out.Color(color)))
}
