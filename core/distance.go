// File: distance.go
// Role: Distance value type with an explicit unreachable sentinel.
//
// Arithmetic rules:
//   - Unreachable absorbs addition: Unreachable.Add(w) == Unreachable for any finite w.
//   - Unreachable compares greater than every finite Distance.
//   - JSON encodes Unreachable as null (JSON has no infinity).

package core

import (
	"encoding/json"
	"math"
	"strconv"
)

// Distance is a shortest-path length. Finite values are ordinary float64
// sums of edge weights; Unreachable denotes the absence of a path.
type Distance float64

// Unreachable is the sentinel distance for "no path".
var Unreachable = Distance(math.Inf(1))

// Reachable reports whether d is a finite path length.
func (d Distance) Reachable() bool { return !math.IsInf(float64(d), 1) }

// Add extends d by an edge of weight w. Unreachable absorbs.
func (d Distance) Add(w float64) Distance {
	if !d.Reachable() {
		return Unreachable
	}

	return d + Distance(w)
}

// Less reports d < o with Unreachable ordered after every finite value.
func (d Distance) Less(o Distance) bool { return d < o }

// Float returns d as float64 (+Inf when unreachable).
func (d Distance) Float() float64 { return float64(d) }

// String renders finite values with %g and Unreachable as "inf".
func (d Distance) String() string {
	if !d.Reachable() {
		return "inf"
	}

	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

// MarshalJSON encodes Unreachable as null.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Reachable() {
		return []byte("null"), nil
	}

	return json.Marshal(float64(d))
}

// UnmarshalJSON decodes null as Unreachable.
func (d *Distance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Unreachable
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*d = Distance(f)

	return nil
}
