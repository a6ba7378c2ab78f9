/*
Package domain contains the core models of the TeamTree hierarchy.

It defines the entities shared by the tree algorithm, the stores and the
transports. This package is kept pure and free of external dependencies
like I/O or persistence.

# Key Entities

  - Node: one employee with optional left and right reports.
  - Side: which report slot an insertion targets.
  - Outcome: the tagged result of an insertion, carrying its arguments.
  - Chart: a named, persisted snapshot of a tree.
*/
package domain
