// Package main provides the tint CLI, a small diagnostic tool for the
// styling library.
//
// Usage:
//
//	tint palette    Render the named colors and attribute samples
//	tint caps       Report what standard output supports
//	tint demo       Showcase batched segment output
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
