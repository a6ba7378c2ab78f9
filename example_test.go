package teamtree_test

import (
	"fmt"
	"os"

	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
)

// Example builds a small team and prints it the way the CLI does.
func Example() {
	tree := hierarchy.New()
	fmt.Println(tui.Message(tree.Insert("Alice", "Bob", domain.SideLeft)))

	_ = tree.SetRoot("Alice")
	for _, step := range []struct {
		manager, employee string
		side              domain.Side
	}{
		{"Alice", "Bob", domain.SideLeft},
		{"Alice", "Charlie", domain.SideLeft},
		{"Alice", "Charlie", domain.SideRight},
		{"Bob", "Diana", domain.SideLeft},
		{"Zara", "Evan", domain.SideLeft},
	} {
		fmt.Println(tui.Message(tree.Insert(step.manager, step.employee, step.side)))
	}

	_ = tui.WriteTree(os.Stdout, tree)

	// Output:
	// ⚠️ No team lead found. Add a root first.
	// ✅ Bob added to LEFT of Alice.
	// ⚠️ Alice already has a LEFT report.
	// ✅ Charlie added to RIGHT of Alice.
	// ✅ Diana added to LEFT of Bob.
	// ❌ Manager 'Zara' not found in the team.
	// - Alice
	//    - Bob
	//       - Diana
	//    - Charlie
}
