// Command gridlayout lays out the grid container of an HTML document
// and prints the resolved geometry.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
