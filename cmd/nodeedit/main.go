// Command nodeedit edits a node graph in the terminal and exports it as SVG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nodeedit:", err)
		os.Exit(1)
	}
}
