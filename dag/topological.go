// SPDX-License-Identifier: MIT

package dag

import (
	"context"
	"fmt"
)

// TopoOption tunes TopologicalSort.
type TopoOption func(*sortConfig)

type sortConfig struct {
	ctx context.Context
}

// WithCancelContext makes TopologicalSort stop with ctx.Err() once ctx is
// done. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(c *sortConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// postOrder is the working state of one sort.
type postOrder struct {
	g     *Graph
	ctx   context.Context
	color map[string]int // White, Gray or Black per vertex
	out   []string       // vertices in finishing order
}

// TopologicalSort orders every vertex of g so that each edge u→v has u
// before v: parents before children.
//
// Algorithm: depth-first search recording finishing order, then reversed.
// Roots and successors are visited in descending ID order so that the
// reversed result lists independent vertices in ascending order, which
// makes the output deterministic.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrCycleDetected on a back edge. AddEdge never admits one, so this only
//     guards graphs corrupted by other means.
//   - ctx.Err() when the WithCancelContext context is done.
//
// Complexity:
//   - Time O(V log V + E log d), the logs coming from sorted iteration.
//   - Space O(V) for colors and recursion.
func TopologicalSort(g *Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := sortConfig{ctx: context.Background()}
	for _, opt := range options {
		opt(&cfg)
	}

	ids := g.Vertices()
	po := &postOrder{
		g:     g,
		ctx:   cfg.ctx,
		color: make(map[string]int, len(ids)),
		out:   make([]string, 0, len(ids)),
	}
	for i := len(ids) - 1; i >= 0; i-- {
		if po.color[ids[i]] != White {
			continue
		}
		if err := po.finish(ids[i]); err != nil {
			return nil, err
		}
	}

	for l, r := 0, len(po.out)-1; l < r; l, r = l+1, r-1 {
		po.out[l], po.out[r] = po.out[r], po.out[l]
	}

	return po.out, nil
}

// finish visits everything reachable from id and then appends id.
func (po *postOrder) finish(id string) error {
	if err := po.ctx.Err(); err != nil {
		return err
	}
	switch po.color[id] {
	case Gray:
		return fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	po.color[id] = Gray

	succ := sortedKeys(po.g.succ[id])
	for i := len(succ) - 1; i >= 0; i-- {
		if err := po.finish(succ[i]); err != nil {
			return err
		}
	}

	po.color[id] = Black
	po.out = append(po.out, id)

	return nil
}
