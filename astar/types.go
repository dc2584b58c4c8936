// Package astar defines core types, configuration options and sentinel errors
// for A* grid search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoPath indicates that the frontier was exhausted without reaching goal.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrExpansionLimit indicates that WithMaxExpansions stopped the search early.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Position is the cell coordinate type searched over.
type Position = gridgraph.Position

// Options configures the behavior of a search.
//
// Reverse        – false: goal first; true: cell after start first.
// RegionPrecheck – answer ErrNoPath up front when goal is provably unreachable.
// MaxExpansions  – stop after this many closed cells; 0 means no limit.
// OnPush         – called for every frontier push with the pushed fScore.
// OnExpand       – called for every cell closed, with its gScore.
type Options struct {
	Reverse        bool
	RegionPrecheck bool
	MaxExpansions  int
	OnPush         func(p Position, f int)
	OnExpand       func(p Position, g int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns an Options struct with defaults:
//   - Reverse:        false (goal→…→cell after start).
//   - RegionPrecheck: false.
//   - MaxExpansions:  0 (no limit).
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPush:   func(Position, int) {},
		OnExpand: func(Position, int) {},
	}
}

// WithReverse returns the path ordered from the cell after start to goal.
func WithReverse() Option {
	return WithReverseOrder(true)
}

// WithReverseOrder sets the path direction explicitly.
func WithReverseOrder(reverse bool) Option {
	return func(o *Options) {
		o.Reverse = reverse
	}
}

// WithRegionPrecheck labels the grid's regions before searching and returns
// ErrNoPath at once when goal is off-grid, a wall, or in a different region
// than a passable start. It never changes a result; it only skips searches
// that cannot succeed.
func WithRegionPrecheck() Option {
	return func(o *Options) {
		o.RegionPrecheck = true
	}
}

// WithMaxExpansions stops the search with ErrExpansionLimit once n cells
// have been closed without reaching goal.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnPush registers a callback run for every frontier push.
func WithOnPush(fn func(p Position, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback run whenever a cell is closed.
func WithOnExpand(fn func(p Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a successful search.
//   - Path:     cells after start up to and including goal, in the requested order.
//   - Cost:     gScore of goal, in squared-distance units.
//   - Expanded: number of cells closed.
//   - Pushed:   number of frontier pushes, stale duplicates included.
type Result struct {
	Path     []Position
	Cost     int
	Expanded int
	Pushed   int
}
