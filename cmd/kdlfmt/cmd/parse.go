package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kdlspec/kdl-go"
	"github.com/kdlspec/kdl-go/document"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a KDL document and print its node tree",
	Long: `parse reads a KDL document, parses it, and prints a one-line-per-node
summary of the resulting tree: each node's type annotation (if any), name,
argument count, property count, and child count.

This is meant for inspecting parser output while developing against the
library, not as a stable machine-readable format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	doc, err := kdl.ParseString(string(src))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	for _, n := range doc.Nodes {
		describeNode(os.Stdout, n, 0)
	}
	return nil
}

func describeNode(w io.Writer, n *document.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	typ := ""
	if n.Type != "" {
		typ = fmt.Sprintf("(%s)", n.Type)
	}
	props := 0
	if n.Properties != nil {
		props = n.Properties.Len()
	}
	fmt.Fprintf(w, "%s%s%s args=%d props=%d children=%d\n", indent, typ, n.Name.AsString(), len(n.Arguments), props, len(n.Children))
	for _, c := range n.Children {
		describeNode(w, c, depth+1)
	}
}
