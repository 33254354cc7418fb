package internal

import (
	"bytes"
	"io"
	"strconv"

	"github.com/xiaobogaga/tableparser/util"
)

// A specification file describes a truth table with n boolean inputs:
//
//	<line 0>      unused
//	<line 1>      unused
//	<n>           bit width
//	<value_0>
//	...
//	<value_{2^n-1}>
//
// Lines 0 and 1 are kept for upstream tooling and never interpreted here.

const (
	headerLine = 2
	// 2^maxBitWidth must still fit in an int row count on this platform.
	maxBitWidth = strconv.IntSize - 2
)

type Spec struct {
	BitWidth int
	Values   []int64
}

// RowCount returns 2^BitWidth.
func (spec *Spec) RowCount() int {
	return 1 << uint(spec.BitWidth)
}

// ParseSpec reads a whole specification file from rd. The row count is checked before any
// row is parsed.
func ParseSpec(rd io.Reader) (*Spec, error) {
	lines, err := util.ReadLines(rd)
	if err != nil {
		return nil, makeErr(UnreadableFile, err, "failed to read specification")
	}
	if len(lines) <= headerLine {
		return nil, makeErr(MalformedHeader, nil, "expected bit width at line %d, file has %d lines",
			headerLine+1, len(lines))
	}
	n, err := parseInt(lines[headerLine])
	if err != nil {
		return nil, makeErr(MalformedHeader, err, "bad bit width %q at line %d", lines[headerLine], headerLine+1)
	}
	if n < 0 {
		return nil, makeErr(MalformedHeader, nil, "negative bit width %d at line %d", n, headerLine+1)
	}
	body := lines[headerLine+1:]
	if n > maxBitWidth {
		return nil, makeErr(RowCountMismatch, nil, "bit width %d needs 2^%d rows, got %d", n, n, len(body))
	}
	spec := &Spec{BitWidth: int(n)}
	if count := spec.RowCount(); len(body) != count {
		return nil, makeErr(RowCountMismatch, nil, "bit width %d needs %d rows, got %d", n, count, len(body))
	}
	spec.Values = make([]int64, len(body))
	for index, line := range body {
		value, err := parseInt(line)
		if err != nil {
			return nil, makeErr(MalformedRow, err, "bad value %q for row %d at line %d",
				line, index, headerLine+2+index)
		}
		spec.Values[index] = value
	}
	return spec, nil
}

// parseInt accepts a base 10 integer with an optional sign and surrounding white space.
func parseInt(line []byte) (int64, error) {
	line = bytes.TrimSpace(line)
	if !util.IsDecimal(line) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(string(line), 10, 64)
}
