package domain

// OutcomeKind enumerates the terminal results of an insertion.
type OutcomeKind string

const (
	OutcomeInserted        OutcomeKind = "inserted"
	OutcomeSlotOccupied    OutcomeKind = "slot_occupied"
	OutcomeInvalidSide     OutcomeKind = "invalid_side"
	OutcomeManagerNotFound OutcomeKind = "manager_not_found"
	OutcomeEmptyTree       OutcomeKind = "empty_tree"
)

// Outcome is the result of an insertion. It always carries the original
// arguments so that any layer can render a message without extra context.
type Outcome struct {
	Kind     OutcomeKind `json:"outcome" yaml:"outcome"`
	Manager  string      `json:"manager" yaml:"manager"`
	Employee string      `json:"employee" yaml:"employee"`
	Side     Side        `json:"side" yaml:"side"`
}

// Inserted reports whether the tree gained a node.
func (o Outcome) Inserted() bool {
	return o.Kind == OutcomeInserted
}

// Err returns nil for a successful insertion and an *InsertError otherwise.
func (o Outcome) Err() error {
	var cause error
	switch o.Kind {
	case OutcomeInserted:
		return nil
	case OutcomeSlotOccupied:
		cause = ErrSlotOccupied
	case OutcomeInvalidSide:
		cause = ErrInvalidSide
	case OutcomeManagerNotFound:
		cause = ErrManagerNotFound
	default:
		cause = ErrEmptyTree
	}
	return &InsertError{
		Manager:  o.Manager,
		Employee: o.Employee,
		Side:     o.Side,
		Err:      cause,
	}
}
