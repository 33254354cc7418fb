package util

import (
	"bufio"
	"bytes"
	"io"
)

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

func IsSign(b byte) bool {
	return b == '+' || b == '-'
}

// IsDecimal reports whether s is an optionally signed run of decimal digits.
func IsDecimal(s []byte) bool {
	if len(s) > 0 && IsSign(s[0]) {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for _, b := range s {
		if !IsNumber(b) {
			return false
		}
	}
	return true
}

// ReadLines reads all lines from rd. Each returned line keeps no terminator. A final line
// without a trailing '\n' is still returned, but nothing follows the last '\n'.
func ReadLines(rd io.Reader) ([][]byte, error) {
	var lines [][]byte
	bfReader := bufio.NewReader(rd)
	for {
		line, err := bfReader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) > 0 {
			lines = append(lines, bytes.TrimSuffix(line, []byte("\n")))
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}
