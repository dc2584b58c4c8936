package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridastar/gridgraph"
)

var (
	numberRow  = cty.List(cty.Number)
	pathOfPair = cty.List(cty.List(cty.Number))
)

// decodeRows evaluates the rows expression. Each element is either a row
// string or a list of numbers.
func decodeRows(expr hcl.Expression, blocked int) ([][]int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: rows is null", ErrBadRow)
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("%w: rows must be a list, got %s", ErrBadRow, ty.FriendlyName())
	}

	var rows [][]int
	for it := val.ElementIterator(); it.Next(); {
		idx, elem := it.Element()
		row, err := decodeRow(elem, blocked)
		if err != nil {
			i, _ := idx.AsBigFloat().Int64()
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeRow(elem cty.Value, blocked int) ([]int, error) {
	if elem.IsNull() {
		return nil, ErrBadRow
	}
	if elem.Type().Equals(cty.String) {
		return parseRowString(elem.AsString(), blocked)
	}

	conv, err := convert.Convert(elem, numberRow)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRow, err)
	}
	var row []int
	if err := gocty.FromCtyValue(conv, &row); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRow, err)
	}
	return row, nil
}

// parseRowString decodes one row string. '.' is 0, or 1 when 0 is the
// blocked value, so a dot is always free.
func parseRowString(s string, blocked int) ([]int, error) {
	free := 0
	if blocked == free {
		free = 1
	}
	row := make([]int, 0, len(s))
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			row = append(row, int(ch-'0'))
		case ch == '.':
			row = append(row, free)
		case ch == '#':
			row = append(row, blocked)
		case ch == ' ':
			// spacing for readability
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrBadRow, ch)
		}
	}
	return row, nil
}

// decodePath evaluates an optional list of [row, col] pairs.
// ok is false when the attribute was omitted or null.
func decodePath(expr hcl.Expression) (path []gridgraph.Position, ok bool, err error) {
	if expr == nil {
		return nil, false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, false, diags
	}
	if val.IsNull() {
		return nil, false, nil
	}

	conv, cerr := convert.Convert(val, pathOfPair)
	if cerr != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrBadPosition, cerr)
	}
	var pairs [][]int
	if err := gocty.FromCtyValue(conv, &pairs); err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrBadPosition, err)
	}

	path = make([]gridgraph.Position, 0, len(pairs))
	for _, pair := range pairs {
		p, err := toPosition(pair)
		if err != nil {
			return nil, false, err
		}
		path = append(path, p)
	}
	return path, true, nil
}
