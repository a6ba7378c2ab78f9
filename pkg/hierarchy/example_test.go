package hierarchy_test

import (
	"fmt"
	"strings"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
)

// ExampleTree_Render walks the hierarchy lazily.
func ExampleTree_Render() {
	tree := hierarchy.NewWithRoot("A")
	tree.Insert("A", "B", domain.SideLeft)
	tree.Insert("A", "C", domain.SideRight)
	tree.Insert("B", "D", domain.SideLeft)

	for depth, name := range tree.Render() {
		fmt.Printf("%s%s\n", strings.Repeat(".", depth), name)
	}

	// Output:
	// A
	// .B
	// ..D
	// .C
}
