package scenario

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridastar/astar"
)

// Run executes every search of sc in file order. opts are applied to each
// search before its own reverse setting.
func (sc *Scenario) Run(opts ...astar.Option) []Outcome {
	out := make([]Outcome, 0, len(sc.Searches))
	for _, s := range sc.Searches {
		out = append(out, sc.RunSearch(s, opts...))
	}
	return out
}

// RunSearch executes a single search on sc's grid and checks its expectation.
func (sc *Scenario) RunSearch(s Search, opts ...astar.Option) Outcome {
	all := append(slices.Clone(opts), astar.WithReverseOrder(s.Reverse))
	res, err := astar.Search(sc.Grid, s.Start, s.Goal, all...)

	o := Outcome{Search: s}
	switch {
	case err == nil:
		o.Found = true
		o.Path = res.Path
		o.Cost = res.Cost
		o.Expanded = res.Expanded
	case errors.Is(err, astar.ErrNoPath):
	default:
		o.Err = err
		return o
	}

	switch {
	case s.ExpectNone && o.Found:
		o.Mismatch = fmt.Sprintf("expected no path, got %v", o.Path)
	case s.HasExpect && !o.Found:
		o.Mismatch = fmt.Sprintf("expected %v, got no path", s.Expect)
	case s.HasExpect && !slices.Equal(s.Expect, o.Path):
		o.Mismatch = fmt.Sprintf("expected %v, got %v", s.Expect, o.Path)
	}
	return o
}
