package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/xiaobogaga/tableparser/tableparser/internal"
)

// A simple program converting a truth table specification file to the table file read by the
// synthesis tools. Usage: tableparser <spec file>. The table is written to <spec file>.table.

func run(args []string) (string, error) {
	if len(args) == 0 {
		return "", &internal.ConvertError{Kind: internal.MissingArgument, Message: "no specification file given"}
	}
	return internal.Convert(args[0])
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.ErrorLevel)
	_, err := run(os.Args[1:])
	if err != nil {
		log.WithField("args", os.Args[1:]).Fatalf("[tableparser]: %v", err)
	}
}
