package unionfind_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

// newSet builds a DisjointSet for v or fails the test.
func newSet(t *testing.T, v unionfind.Variant, n int) *unionfind.DisjointSet {
	t.Helper()
	ds, err := unionfind.New(v, n)
	require.NoError(t, err)
	require.Equal(t, v, ds.Variant())
	require.Equal(t, n, ds.Len())
	return ds
}

// roots snapshots Find for every element.
func roots(t *testing.T, ds *unionfind.DisjointSet) []int {
	t.Helper()
	out := make([]int, ds.Len())
	for i := range out {
		r, err := ds.Find(i)
		require.NoError(t, err)
		out[i] = r
	}
	return out
}

// TestNew_InvalidSize verifies every variant rejects N <= 0.
func TestNew_InvalidSize(t *testing.T) {
	for _, v := range unionfind.Variants() {
		for _, n := range []int{0, -1, -100} {
			_, err := unionfind.New(v, n)
			assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "%s with n=%d", v, n)
		}
	}
}

// TestNew_UnknownVariant ensures an out-of-range Variant is rejected.
func TestNew_UnknownVariant(t *testing.T) {
	_, err := unionfind.New(unionfind.Variant(42), 4)
	assert.ErrorIs(t, err, unionfind.ErrUnknownVariant)
}

// TestSingletons checks the initial partition: every element is its own root.
func TestSingletons(t *testing.T) {
	for _, v := range unionfind.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			ds := newSet(t, v, 8)
			for i := 0; i < 8; i++ {
				r, err := ds.Find(i)
				require.NoError(t, err)
				assert.Equal(t, i, r)
				ok, err := ds.Connected(i, i)
				require.NoError(t, err)
				assert.True(t, ok, "connected must be reflexive")
			}
			ok, err := ds.Connected(0, 7)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

// TestIndexOutOfRange verifies Find, Union and Connected reject bad ids.
func TestIndexOutOfRange(t *testing.T) {
	for _, v := range unionfind.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			ds := newSet(t, v, 5)
			for _, p := range []int{-1, 5, 99} {
				_, err := ds.Find(p)
				assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
				assert.ErrorIs(t, ds.Union(p, 0), unionfind.ErrIndexOutOfRange)
				assert.ErrorIs(t, ds.Union(0, p), unionfind.ErrIndexOutOfRange)
				_, err = ds.Connected(0, p)
				assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
			}
			// A rejected Union must not have touched the partition.
			assert.Equal(t, []int{0, 1, 2, 3, 4}, roots(t, ds))
		})
	}
}

// TestUnion_Transitive joins a chain and checks symmetry and transitivity.
func TestUnion_Transitive(t *testing.T) {
	for _, v := range unionfind.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			ds := newSet(t, v, 10)
			require.NoError(t, ds.Union(0, 1))
			require.NoError(t, ds.Union(1, 2))
			require.NoError(t, ds.Union(5, 6))

			for _, pair := range [][2]int{{0, 2}, {2, 0}, {1, 0}, {6, 5}} {
				ok, err := ds.Connected(pair[0], pair[1])
				require.NoError(t, err)
				assert.True(t, ok, "%v should be connected", pair)
			}
			for _, pair := range [][2]int{{0, 5}, {2, 6}, {3, 4}, {9, 0}} {
				ok, err := ds.Connected(pair[0], pair[1])
				require.NoError(t, err)
				assert.False(t, ok, "%v should not be connected", pair)
			}
		})
	}
}

// TestUnion_Idempotent ensures repeating a union changes no observable state.
func TestUnion_Idempotent(t *testing.T) {
	for _, v := range unionfind.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			ds := newSet(t, v, 6)
			require.NoError(t, ds.Union(0, 1))
			require.NoError(t, ds.Union(2, 3))
			require.NoError(t, ds.Union(1, 3))
			before := roots(t, ds)

			require.NoError(t, ds.Union(0, 3))
			require.NoError(t, ds.Union(3, 0))
			require.NoError(t, ds.Union(2, 2))
			assert.Equal(t, before, roots(t, ds))
		})
	}
}

// TestUnion_Direction pins the documented linking rules on a fresh pair.
func TestUnion_Direction(t *testing.T) {
	cases := []struct {
		variant unionfind.Variant
		root    int // expected representative after Union(0, 1)
	}{
		{unionfind.QuickFind, 1},          // p relabeled to q's id
		{unionfind.QuickUnion, 1},         // p's root under q's root
		{unionfind.WeightedQuickUnion, 0}, // tie: q's root under p's root
	}
	for _, tc := range cases {
		t.Run(tc.variant.String(), func(t *testing.T) {
			ds := newSet(t, tc.variant, 2)
			require.NoError(t, ds.Union(0, 1))
			assert.Equal(t, []int{tc.root, tc.root}, roots(t, ds))
		})
	}
}

// TestWeightedQuickUnion_SmallerUnderLarger checks size-based linking and
// the ComponentSize accounting.
func TestWeightedQuickUnion_SmallerUnderLarger(t *testing.T) {
	w, err := unionfind.NewWeightedQuickUnion(5)
	require.NoError(t, err)

	require.NoError(t, w.Union(0, 1)) // {0,1} rooted at 0
	require.NoError(t, w.Union(0, 2)) // {0,1,2} rooted at 0
	require.NoError(t, w.Union(4, 0)) // 4 is smaller: goes under 0

	r, err := w.Find(4)
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	sz, err := w.ComponentSize(1)
	require.NoError(t, err)
	assert.Equal(t, 4, sz)

	sz, err = w.ComponentSize(3)
	require.NoError(t, err)
	assert.Equal(t, 1, sz)
}

// TestVariants_AgreeOnRandomUnions cross-checks all variants against a
// label-propagation reference on a random union sequence.
func TestVariants_AgreeOnRandomUnions(t *testing.T) {
	const n, ops = 64, 200
	rng := rand.New(rand.NewSource(7))
	pairs := make([][2]int, ops)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	// Reference: repeatedly relabel until stable.
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	for _, pq := range pairs {
		from, to := label[pq[0]], label[pq[1]]
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for _, v := range unionfind.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			ds := newSet(t, v, n)
			for _, pq := range pairs {
				require.NoError(t, ds.Union(pq[0], pq[1]))
			}
			for p := 0; p < n; p++ {
				for q := 0; q < n; q++ {
					ok, err := ds.Connected(p, q)
					require.NoError(t, err)
					require.Equal(t, label[p] == label[q], ok, "connected(%d,%d)", p, q)
				}
			}
		})
	}
}

// TestParseVariant covers canonical names, short names and rejection.
func TestParseVariant(t *testing.T) {
	for _, v := range unionfind.Variants() {
		got, err := unionfind.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)

		got, err = unionfind.ParseVariant(v.Short())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := unionfind.ParseVariant("  WQU ")
	require.NoError(t, err)
	assert.Equal(t, unionfind.WeightedQuickUnion, got)

	_, err = unionfind.ParseVariant("path-compression")
	assert.True(t, errors.Is(err, unionfind.ErrUnknownVariant))
	assert.Equal(t, "Variant(9)", unionfind.Variant(9).String())
}
