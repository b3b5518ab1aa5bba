// Package console provides the logger every demonstration prints through.
//
// A console logger has no prefix and no flags, so one Println is exactly one
// line of output, with operands separated by single spaces.
package console

import (
	"io"
	"log"
	"os"
)

// Stdout is the console used when a constructor receives a nil logger.
var Stdout = New(os.Stdout)

// New returns a console logger writing to w.
func New(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

// Or returns l, or Stdout when l is nil.
func Or(l *log.Logger) *log.Logger {
	if l == nil {
		return Stdout
	}
	return l
}
