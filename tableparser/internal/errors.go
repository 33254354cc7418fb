package internal

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	MissingArgument ErrorKind = iota
	UnreadableFile
	MalformedHeader
	RowCountMismatch
	MalformedRow
	OutputWriteFailure
	MalformedTable
)

var errorKindNames = map[ErrorKind]string{
	MissingArgument:    "missing argument",
	UnreadableFile:     "unreadable file",
	MalformedHeader:    "malformed header",
	RowCountMismatch:   "row count mismatch",
	MalformedRow:       "malformed row",
	OutputWriteFailure: "output write failure",
	MalformedTable:     "malformed table",
}

func (kind ErrorKind) String() string {
	name, exist := errorKindNames[kind]
	if !exist {
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
	return name
}

// ConvertError is returned by every failing operation of this package. Use errors.As to
// recover the Kind.
type ConvertError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (err *ConvertError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s: %s: %v", err.Kind, err.Message, err.Err)
	}
	return fmt.Sprintf("%s: %s", err.Kind, err.Message)
}

func (err *ConvertError) Unwrap() error {
	return err.Err
}

// Is matches another *ConvertError by Kind only, so errors.Is(err, &ConvertError{Kind: k}) works.
func (err *ConvertError) Is(target error) bool {
	t, ok := target.(*ConvertError)
	return ok && t.Kind == err.Kind
}

func makeErr(kind ErrorKind, cause error, format string, args ...interface{}) error {
	return &ConvertError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the kind of err and whether err carries one.
func KindOf(err error) (ErrorKind, bool) {
	var convertErr *ConvertError
	if errors.As(err, &convertErr) {
		return convertErr.Kind, true
	}
	return 0, false
}
