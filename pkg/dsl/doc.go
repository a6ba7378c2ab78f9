/*
Package dsl provides a fluent Go API for building TeamTree charts in code.

It is the programmatic counterpart of plan files: instead of writing YAML,
callers declare the team lead and then, manager by manager, who reports on
which side. The builder produces a plan.Plan, so the same insertion rules
apply (first pre-order match, no overwrites).

Example usage:

	b := dsl.New("Alice")

	b.Manager("Alice").
		Left("Bob").
		Right("Charlie")

	b.Manager("Bob").
		Left("Diana")

	tree, err := b.Build()
*/
package dsl
