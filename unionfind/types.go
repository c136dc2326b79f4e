package unionfind

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a non-positive number of elements.
	ErrInvalidSize = errors.New("unionfind: number of elements must be positive")
	// ErrIndexOutOfRange indicates an element id outside [0, N).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
	// ErrUnknownVariant indicates an unsupported Variant.
	ErrUnknownVariant = errors.New("unionfind: unknown variant")
)

// Variant selects a disjoint-set implementation.
type Variant int

const (
	// WeightedQuickUnion links by tree size. Default.
	WeightedQuickUnion Variant = iota
	// QuickFind stores component ids directly.
	QuickFind
	// QuickUnion links roots without balancing.
	QuickUnion
)

// Variants lists every supported Variant in declaration order.
func Variants() []Variant {
	return []Variant{WeightedQuickUnion, QuickFind, QuickUnion}
}

// String returns the canonical name of v.
func (v Variant) String() string {
	switch v {
	case WeightedQuickUnion:
		return "weighted-quick-union"
	case QuickFind:
		return "quick-find"
	case QuickUnion:
		return "quick-union"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Short returns the abbreviated name of v (wqu, qf, qu).
func (v Variant) Short() string {
	switch v {
	case WeightedQuickUnion:
		return "wqu"
	case QuickFind:
		return "qf"
	case QuickUnion:
		return "qu"
	default:
		return v.String()
	}
}

// ParseVariant maps a canonical or abbreviated name to a Variant.
// Matching is case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weighted-quick-union", "wqu", "weighted":
		return WeightedQuickUnion, nil
	case "quick-find", "qf":
		return QuickFind, nil
	case "quick-union", "qu":
		return QuickUnion, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Engine is the contract every disjoint-set variant fulfils.
//
// Find returns the representative of p's component. Union merges the
// components of p and q and is a no-op when they already coincide.
// Len reports the number of elements N.
type Engine interface {
	Find(p int) (int, error)
	Union(p, q int) error
	Len() int
}

// DisjointSet wraps an Engine and adds Connected.
// The zero value is not usable; build one with New.
type DisjointSet struct {
	Engine
	variant Variant
}

// New returns a DisjointSet of n singleton components backed by variant v.
//
// Returns ErrInvalidSize if n <= 0, ErrUnknownVariant if v is unsupported.
// Complexity: O(n) time and memory.
func New(v Variant, n int) (*DisjointSet, error) {
	var (
		e   Engine
		err error
	)
	switch v {
	case WeightedQuickUnion:
		e, err = NewWeightedQuickUnion(n)
	case QuickFind:
		e, err = NewQuickFind(n)
	case QuickUnion:
		e, err = NewQuickUnion(n)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if err != nil {
		return nil, err
	}

	return &DisjointSet{Engine: e, variant: v}, nil
}

// Variant reports which implementation backs ds.
func (ds *DisjointSet) Variant() Variant {
	return ds.variant
}

// Connected reports whether p and q belong to the same component.
// It is defined purely in terms of Find.
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	rp, err := ds.Find(p)
	if err != nil {
		return false, err
	}
	rq, err := ds.Find(q)
	if err != nil {
		return false, err
	}

	return rp == rq, nil
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// checkIndex validates p against [0, n).
func checkIndex(p, n int) error {
	if p < 0 || p >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, n)
	}
	return nil
}
