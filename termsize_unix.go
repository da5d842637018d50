//go:build unix || darwin

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalWidth returns the number of columns of the terminal attached to f.
func terminalWidth(f *os.File) (int, error) {
	sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}

	return int(sz.Col), nil
}
