// Package matrix provides the dense float64 grid used to snapshot a weighted
// graph as a V×V distance table.
//
// Dense stores elements row-major in one flat slice. Public indexers (At, Set,
// Row) validate bounds and return ErrIndexOutOfBounds instead of panicking.
// A 0×0 matrix is valid: it is the dense view of an empty graph.
//
// Conventions used by callers in this module:
//
//   - +Inf (math.Inf(1)) marks "no edge" off the diagonal.
//   - The diagonal holds 0 unless a negative self-loop is present.
//
// Complexity:
//
//   - NewDense / NewFilled / Clone: O(r·c) time and memory.
//   - At / Set: O(1).
package matrix
