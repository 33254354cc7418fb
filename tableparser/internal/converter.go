package internal

import (
	"os"
)

// DefaultSuffix is appended to the specification path to name the table file.
const DefaultSuffix = ".table"

type Converter struct {
	Suffix string
}

func NewConverter() *Converter {
	return &Converter{Suffix: DefaultSuffix}
}

// Convert reads the specification file at path and writes its table next to it, replacing any
// previous one. It returns the table path. Nothing is created unless the whole specification
// parses.
func (converter *Converter) Convert(path string) (string, error) {
	spec, err := converter.readSpec(path)
	if err != nil {
		return "", err
	}
	outputPath := path + converter.Suffix
	err = converter.saveTableToFile(outputPath, spec)
	if err != nil {
		return "", err
	}
	return outputPath, nil
}

func (converter *Converter) readSpec(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, makeErr(UnreadableFile, err, "failed to open %s", path)
	}
	defer f.Close()
	return ParseSpec(f)
}

func (converter *Converter) saveTableToFile(path string, spec *Spec) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return makeErr(OutputWriteFailure, err, "failed to create %s", path)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = makeErr(OutputWriteFailure, closeErr, "failed to close %s", path)
		}
	}()
	return WriteTable(f, spec)
}

// Convert converts path with the default suffix.
func Convert(path string) (string, error) {
	return NewConverter().Convert(path)
}
