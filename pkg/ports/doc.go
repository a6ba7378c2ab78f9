/*
Package ports defines the driven ports (interfaces) of TeamTree.

These interfaces decouple the hierarchy from external implementations, allowing
charts to live in memory, on disk or in Redis.

# Key Interfaces

  - ChartStore: persists and loads named chart snapshots.
  - DistributedLocker: serializes chart edits across processes.
*/
package ports
