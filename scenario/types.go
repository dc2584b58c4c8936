package scenario

import (
	"errors"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Sentinel errors for scenario loading.
var (
	// ErrNoGrid indicates the file lacks a grid block.
	ErrNoGrid = errors.New("scenario: missing grid block")
	// ErrBadRow indicates a grid row could not be decoded.
	ErrBadRow = errors.New("scenario: grid row must be a string or a list of integers")
	// ErrBadPosition indicates a coordinate that is not a [row, col] pair.
	ErrBadPosition = errors.New("scenario: position must be a [row, col] pair")
	// ErrExpectConflict indicates a search with both expect and expect_none.
	ErrExpectConflict = errors.New("scenario: expect and expect_none are mutually exclusive")
)

// Scenario is one decoded file: a grid and the searches to run on it.
type Scenario struct {
	Source   string
	Grid     *gridgraph.GridGraph
	Searches []Search
}

// Search is one named search block.
//
// HasExpect distinguishes "no expectation" from an expected empty path.
type Search struct {
	Name       string
	Start      gridgraph.Position
	Goal       gridgraph.Position
	Reverse    bool
	Expect     []gridgraph.Position
	HasExpect  bool
	ExpectNone bool
}

// Outcome is the result of running one Search.
//   - Found:    a path was returned (possibly empty).
//   - Err:      a failure other than "no path".
//   - Mismatch: non-empty when the result contradicts the search's expectation.
type Outcome struct {
	Search   Search
	Path     []gridgraph.Position
	Cost     int
	Expanded int
	Found    bool
	Err      error
	Mismatch string
}

// Passed reports whether the search ran cleanly and met its expectation.
func (o Outcome) Passed() bool {
	return o.Err == nil && o.Mismatch == ""
}
