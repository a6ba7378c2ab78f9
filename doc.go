/*
Package teamtree models an organizational hierarchy as a binary tree: every
employee has at most a left and a right direct report.

The core lives in package hierarchy (insertion by manager name, pre-order
rendering). This package wires it to persistence, locking, metrics and
logging so that CLIs and servers can share one entry point.

# Usage

	svc, err := teamtree.Open(teamtree.WithStore(teamtree.StoreFile), teamtree.WithDir(".teamtree"))
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	ctx := context.Background()
	if _, err := svc.Create(ctx, "eng", "Alice"); err != nil {
		log.Fatal(err)
	}
	out, err := svc.Insert(ctx, "eng", "Alice", "Bob", domain.SideLeft)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Kind) // inserted

# Duplicate names

Managers are matched by exact name and the first match in pre-order wins.
Names are not required to be unique, so a later employee sharing a manager's
name cannot receive reports through Insert.
*/
package teamtree
