// Package unionfind provides a small family of disjoint-set (union-find)
// structures over the integer elements {0..N-1}.
//
// What:
//
//   - QuickFind: O(1) Find, O(N) Union. Every element stores its component id.
//   - QuickUnion: Find and Union cost O(tree height). Roots link blindly.
//   - WeightedQuickUnion: the smaller tree is linked under the larger one,
//     keeping heights at O(log N).
//
// Why:
//
//   - The three variants share one Engine interface, so callers such as the
//     percolation grid can swap them to compare asymptotic behavior.
//   - WeightedQuickUnion is the one to use in production; the other two are
//     baselines.
//
// Connected is defined once on DisjointSet in terms of Find. Engines only
// supply Find, Union and Len, so no variant can diverge in its semantics.
//
// Errors:
//
//   - ErrInvalidSize: N <= 0 at construction.
//   - ErrIndexOutOfRange: element id outside [0, N).
//   - ErrUnknownVariant: Variant value or name not recognized.
//
// Not a general graph library: there is no deletion, no path query and no
// component iteration.
package unionfind
