// Package astar finds a shortest path between two cells of a
// gridgraph.GridGraph using A* search with 8-directional movement.
//
// Overview:
//
//   - FindPath returns the cells visited after start, up to and including goal.
//     By default the slice runs goal→…→(cell after start); WithReverse flips it
//     to (cell after start)→…→goal. start itself is never included.
//   - When start == goal the result is an empty, non-nil slice and a nil error.
//   - When goal cannot be reached the result is nil and ErrNoPath. An
//     unreachable goal is never a panic, and off-grid start or goal positions
//     are accepted; such searches simply run out of frontier.
//   - Search does the same work and also reports cost and expansion counts.
//
// Cost model:
//
//   - Heuristic(a, b) = (b.Row-a.Row)² + (b.Col-a.Col)², squared Euclidean distance.
//   - The same function prices a single move: 1 for orthogonal steps, 2 for
//     diagonal steps. Costs and priorities share one unit, so ties between
//     equal-length routes resolve the same way on every run.
//   - Every free cell costs the same to enter; there is no weighted terrain.
//
// Tie-breaking and determinism:
//
//   - Neighbors are tried in gridgraph.Conn8Offsets order.
//   - The frontier is a min-heap ordered by (fScore, Row, Col).
//   - Together these make the returned path a pure function of the inputs.
//
// Frontier bookkeeping:
//
//   - We use a “lazy” decrease-key strategy: a cheaper route pushes a duplicate
//     entry instead of updating the old one.
//   - A popped entry for an already-closed cell whose priority no longer
//     matches fScore is stale and is dropped.
//   - A neighbor is admitted when it improves on its recorded gScore or when
//     no entry for it is pending in the frontier. A missing gScore counts as 0,
//     and closed cells are checked first, so a closed cell is only reopened
//     by a strictly cheaper route.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols passable cells.
//   - Space: O(N) for score maps plus O(8N) worst-case heap entries.
//
// Options:
//
//   - WithReverse / WithReverseOrder: path direction.
//   - WithOnPush / WithOnExpand: observation hooks.
//   - WithRegionPrecheck: reject goals outside start's region before searching.
//   - WithMaxExpansions: cap the number of closed cells.
//
// Errors (sentinel):
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrNoPath            if goal is unreachable.
//   - ErrExpansionLimit    if WithMaxExpansions stopped the search.
//   - ErrOptionViolation   if an option was given an invalid value.
//
// Thread safety:
//
//   - Each call owns its own search state. Concurrent calls on the same
//     GridGraph are safe because a GridGraph is never mutated.
package astar
