// File: names.go
// Role: NameIndex, the bijection between location names and dense vertex ids.
//
// Invariants:
//   - ids are 0..Len()-1 with no gaps, assigned in Bind order.
//   - byName[names[i]] == i for every i.
//
// Concurrency:
//   - NameIndex is not synchronized. Graph guards its own index with Graph.mu;
//     a standalone index must be confined to one goroutine while it is mutated.

package core

import "fmt"

// NameIndex binds human-readable names to dense integer ids.
type NameIndex struct {
	byName map[string]int
	names  []string
}

// NewNameIndex returns an empty binding.
func NewNameIndex() *NameIndex { return newNameIndex(0) }

func newNameIndex(capacity int) *NameIndex {
	return &NameIndex{
		byName: make(map[string]int, capacity),
		names:  make([]string, 0, capacity),
	}
}

// Bind assigns the next free id to name.
//
// Errors:
//   - ErrEmptyVertexName if name == "".
//   - ErrDuplicateVertex if name is already bound; the index is unchanged.
//
// Complexity: O(1) amortized.
func (ix *NameIndex) Bind(name string) (int, error) {
	if name == "" {
		return NoVertex, ErrEmptyVertexName
	}
	if id, ok := ix.byName[name]; ok {
		return id, fmt.Errorf("%w: %q already bound to id %d", ErrDuplicateVertex, name, id)
	}
	id := len(ix.names)
	ix.byName[name] = id
	ix.names = append(ix.names, name)

	return id, nil
}

// ID resolves name to its id, or ErrUnknownVertex.
func (ix *NameIndex) ID(name string) (int, error) {
	id, ok := ix.byName[name]
	if !ok {
		return NoVertex, fmt.Errorf("%w: name %q", ErrUnknownVertex, name)
	}

	return id, nil
}

// Name resolves id to its name, or ErrUnknownVertex.
func (ix *NameIndex) Name(id int) (string, error) {
	if id < 0 || id >= len(ix.names) {
		return "", fmt.Errorf("%w: id %d", ErrUnknownVertex, id)
	}

	return ix.names[id], nil
}

// Has reports whether name is bound.
func (ix *NameIndex) Has(name string) bool {
	_, ok := ix.byName[name]
	return ok
}

// Names returns every bound name ordered by id. The slice is a copy.
func (ix *NameIndex) Names() []string {
	out := make([]string, len(ix.names))
	copy(out, ix.names)

	return out
}

// Len returns the number of bound names.
func (ix *NameIndex) Len() int { return len(ix.names) }

// Resolve maps a sequence of ids to names, failing on the first unbound id.
func (ix *NameIndex) Resolve(ids []int) ([]string, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		name, err := ix.Name(id)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}

	return out, nil
}
