package internal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// A table file is what the synthesis tools consume:
//
//	NxMxB
//	x\t=>\ty
//	...
//
// N is the input count, M the output count and B the base every x and y is written in. The
// converter always writes N == M and base 10.

const (
	tableBase      = 10
	tableDelimiter = "\t=>\t"
	// Readers index rows with an int, so 2^N must stay below 2^31.
	maxTableInputs = 30
)

type Table struct {
	InputCount  int
	OutputCount int
	Base        int
	Values      []int64
}

// WriteTable writes spec in table format. Rows go out in ascending index order.
func WriteTable(w io.Writer, spec *Spec) error {
	bf := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bf, "%dx%dx%d\n", spec.BitWidth, spec.BitWidth, tableBase)
	if err != nil {
		return makeErr(OutputWriteFailure, err, "failed to write header")
	}
	for index := 0; index < spec.RowCount(); index++ {
		_, err = fmt.Fprintf(bf, "%d%s%d\n", index, tableDelimiter, spec.Values[index])
		if err != nil {
			return makeErr(OutputWriteFailure, err, "failed to write row %d", index)
		}
	}
	if err = bf.Flush(); err != nil {
		return makeErr(OutputWriteFailure, err, "failed to flush table")
	}
	return nil
}

// ParseTable reads a table file with the same rules the synthesis tools apply: empty lines are
// skipped, every index in [0, 2^N) appears exactly once and every value lies in [0, 2^M).
func ParseTable(rd io.Reader) (*Table, error) {
	bfReader := bufio.NewReader(rd)
	header, err := bfReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, makeErr(MalformedTable, err, "failed to read table")
	}
	table := &Table{}
	tokenCount, _ := fmt.Sscanf(header, "%dx%dx%d", &table.InputCount, &table.OutputCount, &table.Base)
	if tokenCount != 3 {
		return nil, makeErr(MalformedTable, nil, "bad header %q, want NxMxB", header)
	}
	if table.InputCount < 0 || table.InputCount > maxTableInputs || table.OutputCount < 0 ||
		table.OutputCount > table.InputCount || table.Base < 2 || table.Base > 36 {
		return nil, makeErr(MalformedTable, nil, "unsupported header %q", header)
	}
	maxInput := int64(1) << uint(table.InputCount)
	maxOutput := int64(1) << uint(table.OutputCount)
	table.Values = make([]int64, maxInput)
	seen := make([]bool, maxInput)
	count := int64(0)
	lineNumber := 1
	for {
		line, err := bfReader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, makeErr(MalformedTable, err, "failed to read table")
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineNumber++
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 {
			x, y, parseErr := table.parseRow(line)
			if parseErr != nil {
				return nil, makeErr(MalformedTable, parseErr, "bad row %q at line %d", line, lineNumber)
			}
			if x >= maxInput || y >= maxOutput {
				return nil, makeErr(MalformedTable, nil, "row %q out of range at line %d", line, lineNumber)
			}
			if seen[x] {
				return nil, makeErr(MalformedTable, nil, "duplicate index %d at line %d", x, lineNumber)
			}
			seen[x] = true
			table.Values[x] = y
			count++
		}
		if err == io.EOF {
			break
		}
	}
	if count != maxInput {
		return nil, makeErr(MalformedTable, nil, "table is incomplete, %d of %d rows", count, maxInput)
	}
	return table, nil
}

func (table *Table) parseRow(line []byte) (int64, int64, error) {
	loc := bytes.Index(line, []byte(tableDelimiter))
	if loc == -1 {
		return 0, 0, fmt.Errorf("missing delimiter %q", tableDelimiter)
	}
	x, err := strconv.ParseInt(string(line[:loc]), table.Base, 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseInt(string(line[loc+len(tableDelimiter):]), table.Base, 64)
	if err != nil {
		return 0, 0, err
	}
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("negative entry")
	}
	return x, y, nil
}
