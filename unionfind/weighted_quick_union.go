package unionfind

// WeightedQuickUnionSet links the root of the smaller tree under the root
// of the larger one. size[r] is meaningful only while r is a root.
//
// Tie-break: when both trees hold the same number of elements, q's root is
// attached under p's root. The choice affects tree shape, never answers.
type WeightedQuickUnionSet struct {
	parent []int
	size   []int
}

// NewWeightedQuickUnion returns a WeightedQuickUnionSet of n singletons.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n).
func NewWeightedQuickUnion(n int) (*WeightedQuickUnionSet, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	return &WeightedQuickUnionSet{parent: identity(n), size: size}, nil
}

// Len returns the number of elements.
func (w *WeightedQuickUnionSet) Len() int { return len(w.parent) }

// Find chases parent links from p to its root.
// Complexity: O(log N).
func (w *WeightedQuickUnionSet) Find(p int) (int, error) {
	if err := checkIndex(p, len(w.parent)); err != nil {
		return 0, err
	}
	return root(w.parent, p), nil
}

// Union merges the trees of p and q by size.
// Complexity: O(log N).
func (w *WeightedQuickUnionSet) Union(p, q int) error {
	if err := checkIndex(p, len(w.parent)); err != nil {
		return err
	}
	if err := checkIndex(q, len(w.parent)); err != nil {
		return err
	}

	i, j := root(w.parent, p), root(w.parent, q)
	if i == j {
		return nil
	}
	if w.size[i] < w.size[j] {
		w.parent[i] = j
		w.size[j] += w.size[i]
	} else {
		w.parent[j] = i
		w.size[i] += w.size[j]
	}

	return nil
}

// ComponentSize returns the number of elements in p's component.
// Complexity: O(log N).
func (w *WeightedQuickUnionSet) ComponentSize(p int) (int, error) {
	r, err := w.Find(p)
	if err != nil {
		return 0, err
	}
	return w.size[r], nil
}
