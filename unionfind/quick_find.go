package unionfind

// QuickFindSet is the eager variant: id[i] is the component id of i.
//
// Find is a single array read. Union rewrites every entry of p's component,
// so a sequence of N unions costs O(N²).
type QuickFindSet struct {
	id []int
}

// NewQuickFind returns a QuickFindSet of n singletons.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n).
func NewQuickFind(n int) (*QuickFindSet, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	return &QuickFindSet{id: identity(n)}, nil
}

// Len returns the number of elements.
func (qf *QuickFindSet) Len() int { return len(qf.id) }

// Find returns the component id of p.
// Complexity: O(1).
func (qf *QuickFindSet) Find(p int) (int, error) {
	if err := checkIndex(p, len(qf.id)); err != nil {
		return 0, err
	}
	return qf.id[p], nil
}

// Union relabels every element of p's component with q's component id.
// Complexity: O(N).
func (qf *QuickFindSet) Union(p, q int) error {
	if err := checkIndex(p, len(qf.id)); err != nil {
		return err
	}
	if err := checkIndex(q, len(qf.id)); err != nil {
		return err
	}

	pid, qid := qf.id[p], qf.id[q]
	if pid == qid {
		return nil
	}
	for i := range qf.id {
		if qf.id[i] == pid {
			qf.id[i] = qid
		}
	}

	return nil
}
