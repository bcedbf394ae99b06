// Package main provides the varnamdb CLI application: a manual-testing
// harness over the known-words store library. It contains no business
// logic beyond flag parsing and calls into pkg/...
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
