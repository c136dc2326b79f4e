package unionfind

// QuickUnionSet is the lazy variant: parent[i] is i's parent in a forest,
// and i is a root when parent[i] == i.
type QuickUnionSet struct {
	parent []int
}

// NewQuickUnion returns a QuickUnionSet of n singletons.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n).
func NewQuickUnion(n int) (*QuickUnionSet, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	return &QuickUnionSet{parent: identity(n)}, nil
}

// Len returns the number of elements.
func (qu *QuickUnionSet) Len() int { return len(qu.parent) }

// Find chases parent links from p to its root.
// Complexity: O(height), which degrades to O(N) on skewed trees.
func (qu *QuickUnionSet) Find(p int) (int, error) {
	if err := checkIndex(p, len(qu.parent)); err != nil {
		return 0, err
	}
	return root(qu.parent, p), nil
}

// Union makes the root of p's tree a child of the root of q's tree.
// Complexity: O(height).
func (qu *QuickUnionSet) Union(p, q int) error {
	if err := checkIndex(p, len(qu.parent)); err != nil {
		return err
	}
	if err := checkIndex(q, len(qu.parent)); err != nil {
		return err
	}

	i, j := root(qu.parent, p), root(qu.parent, q)
	qu.parent[i] = j

	return nil
}

// root walks parent links until a self-referencing element is reached.
// p must already be in range.
func root(parent []int, p int) int {
	for p != parent[p] {
		p = parent[p]
	}
	return p
}
