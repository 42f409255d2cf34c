package domain

// TreeNode is a snapshot of a document node used for browsing
type TreeNode struct {
	Type       NodeType
	ID         string
	Name       string
	Linked     bool   // carries an identity record
	SourceID   string // identity record source, when linked
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	if len(n.Children) > 0 {
		n.IsExpanded = !n.IsExpanded
	}
}

// ExpandAll expands n and every descendant
func (n *TreeNode) ExpandAll() {
	n.IsExpanded = len(n.Children) > 0
	for _, child := range n.Children {
		child.ExpandAll()
	}
}

// Find returns the node with the given id in the subtree rooted at n
func (n *TreeNode) Find(id string) *TreeNode {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// CountLinked returns how many nodes in the subtree carry an identity record
func (n *TreeNode) CountLinked() int {
	count := 0
	if n.Linked {
		count++
	}
	for _, child := range n.Children {
		count += child.CountLinked()
	}
	return count
}
