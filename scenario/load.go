package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// hclScenarioFile represents the top-level structure of a scenario file for decoding.
type hclScenarioFile struct {
	Grid     *hclGrid     `hcl:"grid,block"`
	Searches []*hclSearch `hcl:"search,block"`
}

type hclGrid struct {
	Blocked *int           `hcl:"blocked,optional"`
	Rows    hcl.Expression `hcl:"rows"`
}

type hclSearch struct {
	Name       string         `hcl:"name,label"`
	Start      []int          `hcl:"start"`
	Goal       []int          `hcl:"goal"`
	Reverse    *bool          `hcl:"reverse,optional"`
	Expect     hcl.Expression `hcl:"expect,optional"`
	ExpectNone *bool          `hcl:"expect_none,optional"`
}

// Parse decodes a scenario from HCL source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	return parseWith(hclparse.NewParser(), src, filename)
}

// LoadFile reads and decodes a single scenario file.
func LoadFile(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// LoadDir decodes every .hcl file directly inside dir, sorted by name.
// A path to a single file is accepted too.
func LoadDir(dir string) ([]*Scenario, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scenario: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		sc, err := LoadFile(dir)
		if err != nil {
			return nil, err
		}
		return []*Scenario{sc}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scenario: list %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".hcl") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	parser := hclparse.NewParser()
	out := make([]*Scenario, 0, len(files))
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("scenario: read %s: %w", f, err)
		}
		sc, err := parseWith(parser, src, f)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func parseWith(parser *hclparse.Parser, src []byte, filename string) (*Scenario, error) {
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclScenarioFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if parsed.Grid == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoGrid, filename)
	}

	opts := gridgraph.DefaultGridOptions()
	if parsed.Grid.Blocked != nil {
		opts.BlockedValue = *parsed.Grid.Blocked
	}
	values, err := decodeRows(parsed.Grid.Rows, opts.BlockedValue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	sc := &Scenario{Source: filename, Grid: gg}
	for _, hs := range parsed.Searches {
		s, err := decodeSearch(hs)
		if err != nil {
			return nil, fmt.Errorf("%s: search %q: %w", filename, hs.Name, err)
		}
		sc.Searches = append(sc.Searches, s)
	}
	return sc, nil
}

func decodeSearch(hs *hclSearch) (Search, error) {
	s := Search{Name: hs.Name}
	var err error
	if s.Start, err = toPosition(hs.Start); err != nil {
		return s, fmt.Errorf("start: %w", err)
	}
	if s.Goal, err = toPosition(hs.Goal); err != nil {
		return s, fmt.Errorf("goal: %w", err)
	}
	if hs.Reverse != nil {
		s.Reverse = *hs.Reverse
	}
	if hs.ExpectNone != nil {
		s.ExpectNone = *hs.ExpectNone
	}
	s.Expect, s.HasExpect, err = decodePath(hs.Expect)
	if err != nil {
		return s, fmt.Errorf("expect: %w", err)
	}
	if s.HasExpect && s.ExpectNone {
		return s, ErrExpectConflict
	}
	return s, nil
}

func toPosition(pair []int) (gridgraph.Position, error) {
	if len(pair) != 2 {
		return gridgraph.Position{}, fmt.Errorf("%w: got %v", ErrBadPosition, pair)
	}
	return gridgraph.Pos(pair[0], pair[1]), nil
}
