// Command mazepath scores grid mazes, counts optimal tiles, enumerates wall
// removals and finds the obstacle that first cuts a grid in two.
package main

import (
	"fmt"
	"os"
)

func main() {
	root, a := newRootCmd()
	err := root.Execute()
	a.stopProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazepath:", err)
		os.Exit(1)
	}
}
