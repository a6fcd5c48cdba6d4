//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO duplicates f onto the stdout and stderr descriptors, so
// runtime panics and writes from any goroutine land in f. The caller may
// close f afterwards.
func redirectStdIO(f *os.File) error {
	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return fmt.Errorf("dup2 %s onto %s: %w", f.Name(), std.Name(), err)
		}
	}
	return nil
}

const stdioStaysOpen = false
