package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned when an insertion is attempted before a root exists.
var ErrEmptyTree = errors.New("tree has no root")

// ErrManagerNotFound is returned when no node matches the requested manager name.
var ErrManagerNotFound = errors.New("manager not found")

// ErrInvalidSide is returned when the side is neither left nor right.
var ErrInvalidSide = errors.New("side must be 'left' or 'right'")

// ErrSlotOccupied is returned when the manager already has a report on the requested side.
var ErrSlotOccupied = errors.New("slot already occupied")

// ErrRootExists is returned when a root is set on a tree that already has one.
var ErrRootExists = errors.New("tree already has a root")

// ErrChartNotFound is returned when a chart ID cannot be found in the store.
var ErrChartNotFound = errors.New("chart not found")

// InsertError carries the arguments of a failed insertion alongside its cause.
type InsertError struct {
	Manager  string
	Employee string
	Side     Side
	Err      error
}

func (e *InsertError) Error() string {
	switch e.Err {
	case ErrManagerNotFound:
		return fmt.Sprintf("insert %q: manager %q not found", e.Employee, e.Manager)
	case ErrSlotOccupied:
		return fmt.Sprintf("insert %q: %q already has a %s report", e.Employee, e.Manager, e.Side)
	case ErrInvalidSide:
		return fmt.Sprintf("insert %q: invalid side %q", e.Employee, e.Side)
	}
	return fmt.Sprintf("insert %q under %q: %v", e.Employee, e.Manager, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}
