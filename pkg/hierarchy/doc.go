/*
Package hierarchy implements the team tree: a binary tree of employees where
every manager has at most one left and one right report.

# Lookup

Managers are located by exact name with a pre-order walk (node, left subtree,
right subtree). Names are not required to be unique; only the first match in
that order is ever considered. A second manager with the same name further
down or to the right can never receive reports through Insert.

# Ownership

A Tree owns all of its nodes. Nothing outside the tree holds a reference to
them: Snapshot returns a deep copy and Render yields plain values.
Tree is not safe for concurrent use; see package registry for serialized access.
*/
package hierarchy
