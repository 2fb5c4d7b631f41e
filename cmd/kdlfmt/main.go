// Command kdlfmt formats, parses, and validates KDL documents.
package main

import (
	"fmt"
	"os"

	"github.com/kdlspec/kdl-go/cmd/kdlfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
