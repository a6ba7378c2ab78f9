package domain

// Node is a single entry in the hierarchy: one employee and up to two direct reports.
// Nodes carry no parent reference; the owning tree reaches them from the root only.
type Node struct {
	Name  string `json:"name" yaml:"name"`
	Left  *Node  `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Node  `json:"right,omitempty" yaml:"right,omitempty"`
}

// NewNode creates a node with both report slots empty.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Name:  n.Name,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}
