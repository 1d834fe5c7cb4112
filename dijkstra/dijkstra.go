// Package dijkstra finds the minimum energy that organizes a burrow.
//
// The graph is implicit: every board.Configuration is a vertex, every legal
// move an edge weighted by its energy. Vertices are generated on demand.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the configurations actually reached.
//   - Space: O(V + E) for the best-energy map and the lazy heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop as soon as an organized configuration is popped; its energy is final.
//   - We stop exploring once the minimum energy in the heap exceeds MaxEnergy.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/diagram"
)

// LowestEnergy returns the minimum total energy needed to move every
// occupant of initial into its own side room on d.
// See Search for options and errors.
func LowestEnergy(d *diagram.Diagram, initial board.Configuration, opts ...Option) (int64, error) {
	res, err := Search(d, initial, opts...)
	if err != nil {
		return 0, err
	}
	return res.Energy, nil
}

// Search runs a uniform-cost search from initial to the first organized
// configuration and reports its energy along with search statistics.
//
// Preconditions and validation (in order):
//  1. d must be non-nil (ErrNilDiagram).
//  2. Options must be valid (ErrBadMaxEnergy, ErrBadProgress).
//
// Returns ErrNoSolution if no organized configuration is reachable within
// MaxEnergy and MoveFilter, or the context's error if it is done first.
func Search(d *diagram.Diagram, initial board.Configuration, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if d == nil {
		return nil, ErrNilDiagram
	}
	if cfg.MaxEnergy < 0 {
		return nil, ErrBadMaxEnergy
	}
	if cfg.ProgressEvery <= 0 {
		return nil, ErrBadProgress
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	// 3) Initialize runner and run main loop
	r := &runner{
		d:       d,
		options: cfg,
		best:    make(map[string]int64),
		pq:      make(nodePQ, 0, 1024),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]step)
	}
	r.init(initial)
	goal, err := r.process()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Energy:   goal.energy,
		Final:    goal.cfg,
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
	if cfg.ReturnPath {
		res.Path = r.path(initial, goal.cfg)
	}
	cfg.Logger.Debug().
		Int64("energy", res.Energy).
		Str("expanded", humanize.Comma(int64(res.Expanded))).
		Str("pushed", humanize.Comma(int64(res.Pushed))).
		Uint64("final", res.Final.Hash()).
		Msg("burrow organized")

	return res, nil
}

// step records how a configuration was first reached at its best energy.
type step struct {
	parent board.Configuration
	move   board.Move
}

// runner holds the mutable state for a single search.
type runner struct {
	d        *diagram.Diagram
	options  Options
	best     map[string]int64 // Configuration key → lowest energy seen.
	prev     map[string]step  // Configuration key → predecessor; nil unless ReturnPath.
	pq       nodePQ
	expanded int
	pushed   int
}

// init records the initial configuration at energy 0 and pushes it.
func (r *runner) init(initial board.Configuration) {
	heap.Init(&r.pq)
	r.best[initial.Key()] = 0
	r.push(&nodeItem{cfg: initial, energy: 0})
}

func (r *runner) push(it *nodeItem) {
	heap.Push(&r.pq, it)
	r.pushed++
}

// process pops configurations in energy order until one is organized.
//
// Loop termination conditions:
//
//   - An organized configuration is popped (returned).
//   - The minimum energy in the heap exceeds MaxEnergy (ErrNoSolution).
//   - The heap becomes empty (ErrNoSolution).
//   - The context is done (its error, wrapped).
func (r *runner) process() (*nodeItem, error) {
	ctx := r.options.Context
	log := r.options.Logger
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dijkstra: search interrupted after %d expansions: %w", r.expanded, err)
		}

		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries superseded by a cheaper push.
		if item.energy > r.best[item.cfg.Key()] {
			continue
		}
		if item.energy > r.options.MaxEnergy {
			break
		}

		b := board.New(r.d, item.cfg)
		if b.IsOrganized() {
			return item, nil
		}

		r.expanded++
		if r.expanded%r.options.ProgressEvery == 0 {
			log.Debug().
				Str("expanded", humanize.Comma(int64(r.expanded))).
				Str("frontier", humanize.Comma(int64(r.pq.Len()))).
				Int64("energy", item.energy).
				Msg("searching")
		}
		r.relax(b, item.energy)
	}

	return nil, ErrNoSolution
}

// relax pushes every successor of b whose energy improves on the best known.
func (r *runner) relax(b *board.Board, energy int64) {
	for _, s := range b.Successors() {
		if r.options.MoveFilter != nil && !r.options.MoveFilter(b, s.Move) {
			continue
		}

		next := energy + s.Move.Energy
		if next > r.options.MaxEnergy {
			continue
		}

		key := s.Config.Key()
		if old, seen := r.best[key]; seen && next >= old {
			continue
		}
		r.best[key] = next
		if r.prev != nil {
			r.prev[key] = step{parent: b.Config(), move: s.Move}
		}
		r.push(&nodeItem{cfg: s.Config, energy: next})
	}
}

// path walks predecessors back from goal to initial.
func (r *runner) path(initial, goal board.Configuration) []board.Move {
	moves := []board.Move{}
	for at := goal; !at.Equal(initial); {
		st := r.prev[at.Key()]
		moves = append(moves, st.move)
		at = st.parent
	}
	slices.Reverse(moves)
	return moves
}

// nodeItem is a frontier entry: a configuration and the energy it was reached with.
type nodeItem struct {
	cfg    board.Configuration
	energy int64
}

// nodePQ is a min-heap of *nodeItem ordered by energy ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller energy → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].energy < pq[j].energy }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
