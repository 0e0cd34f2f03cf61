package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	view  *core.View
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on v from source.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(v *core.View, source int, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !v.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, source)
	}

	n := v.Order()
	w := &walker{
		view:  v,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = core.NoVertex
	}

	w.enqueue(source, 0, core.NoVertex)

	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, a := range w.view.Neighbors(u) {
			if w.res.Depth[a.To] != Unreached || !w.opts.FilterNeighbor(u, a) {
				continue
			}
			w.enqueue(a.To, d+1, u)
		}
	}

	return nil
}
