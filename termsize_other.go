//go:build !unix && !darwin

package main

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("terminal size not available for this platform")

func terminalWidth(_ *os.File) (int, error) {
	return 0, errUnsupported
}
