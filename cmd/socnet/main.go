// SPDX-License-Identifier: MIT
// Command socnet loads a social graph from a local file and prints analysis
// results as JSON: important members, cliques, the bridge between the two
// largest communities, and recommended connections.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
