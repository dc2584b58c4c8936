// Package astar implements A* search on an 8-connected grid.
//
// Notes on implementation choices:
//
//   - Edge cost and heuristic share the squared-distance unit.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when they are popped.
//   - pending counts heap entries per position, so the "not yet in the
//     frontier" admission test is O(1) instead of a heap scan.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Heuristic returns the squared Euclidean distance between a and b.
// It is both the A* estimate and the price of a single move
// (1 orthogonal, 2 diagonal).
func Heuristic(a, b Position) int {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	return dr*dr + dc*dc
}

// FindPath returns the cells visited after start, up to and including goal.
// The slice runs goal-first unless WithReverse is given.
//
// Returns:
//
//   - an empty, non-nil slice and nil when start == goal.
//   - nil and ErrNoPath when goal is unreachable (including off-grid goals).
//   - nil and ErrNilGrid, ErrOptionViolation or ErrExpansionLimit on misuse
//     or when a configured limit is hit.
func FindPath(g *gridgraph.GridGraph, start, goal Position, opts ...Option) ([]Position, error) {
	res, err := Search(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs A* from start to goal and reports the path with statistics.
// See FindPath for the path and error contract.
//
// Complexity:
//
//   - Time:  O(N log N), N = passable cells.
//   - Space: O(N).
func Search(g *gridgraph.GridGraph, start, goal Position, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.RegionPrecheck && !mayReach(g, start, goal) {
		return nil, ErrNoPath
	}

	r := &runner{
		g:        g,
		options:  cfg,
		goal:     goal,
		gScore:   make(map[Position]int),
		fScore:   make(map[Position]int),
		cameFrom: make(map[Position]Position),
		closed:   make(map[Position]bool),
		pending:  make(map[Position]int),
	}
	r.init(start)

	return r.process()
}

// mayReach is false only when no search from start can reach goal.
// Region labels are Conn8 labels; for a Conn4 grid only the goal test applies.
func mayReach(g *gridgraph.GridGraph, start, goal Position) bool {
	if start == goal {
		return true
	}
	if !g.Passable(goal) {
		return false
	}
	if g.Conn != gridgraph.Conn8 || !g.Passable(start) {
		return true
	}
	return g.SameRegion(start, goal)
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.GridGraph // read-only within a search
	options  Options
	goal     Position
	gScore   map[Position]int      // best known cost from start
	fScore   map[Position]int      // gScore + Heuristic(p, goal) at last push
	cameFrom map[Position]Position // predecessor on best known route
	closed   map[Position]bool     // expanded cells
	pending  map[Position]int      // heap entries per position
	pq       frontier
	expanded int
	pushed   int
}

// init seeds gScore/fScore with start and pushes it.
func (r *runner) init(start Position) {
	r.gScore[start] = 0
	heap.Init(&r.pq)
	r.push(start, Heuristic(start, r.goal))
}

func (r *runner) push(p Position, f int) {
	r.fScore[p] = f
	heap.Push(&r.pq, entry{pos: p, f: f})
	r.pending[p]++
	r.pushed++
	r.options.OnPush(p, f)
}

// process is the expansion loop. It stops when goal is popped, the frontier
// is empty, or the expansion limit is hit.
func (r *runner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry)
		current := item.pos
		r.pending[current]--

		if current == r.goal {
			return &Result{
				Path:     r.reconstruct(current),
				Cost:     r.gScore[current],
				Expanded: r.expanded,
				Pushed:   r.pushed,
			}, nil
		}

		// A closed cell is only expanded again from its freshest entry.
		if r.closed[current] && item.f != r.fScore[current] {
			continue
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, ErrExpansionLimit
		}

		r.closed[current] = true
		r.expanded++
		r.options.OnExpand(current, r.gScore[current])
		r.relax(current)
	}

	return nil, ErrNoPath
}

// relax tries every Conn8 neighbor of current.
// Missing gScore entries read as 0; the closed test must come first.
func (r *runner) relax(current Position) {
	for _, d := range gridgraph.Conn8Offsets {
		neighbor := current.Add(d)
		if !r.g.Passable(neighbor) {
			continue
		}
		tentative := r.gScore[current] + Heuristic(current, neighbor)
		known := r.gScore[neighbor]

		if r.closed[neighbor] && tentative >= known {
			continue
		}
		if tentative < known || r.pending[neighbor] == 0 {
			r.cameFrom[neighbor] = current
			r.gScore[neighbor] = tentative
			r.push(neighbor, tentative+Heuristic(neighbor, r.goal))
		}
	}
}

// reconstruct walks cameFrom back from goal. start has no cameFrom entry
// and is left out.
func (r *runner) reconstruct(current Position) []Position {
	path := []Position{}
	for {
		prev, ok := r.cameFrom[current]
		if !ok {
			break
		}
		path = append(path, current)
		current = prev
	}
	if r.options.Reverse {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	return path
}
