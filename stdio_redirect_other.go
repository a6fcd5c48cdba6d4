//go:build !unix

package main

import "os"

// redirectStdIO replaces the os.Stdout and os.Stderr variables with f.
// Panic traces still reach the original descriptors.
func redirectStdIO(f *os.File) error {
	os.Stdout = f
	os.Stderr = f
	return nil
}

// f backs os.Stdout from now on and must outlive the run.
const stdioStaysOpen = true
