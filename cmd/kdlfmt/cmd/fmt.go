package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kdlspec/kdl-go"
	"github.com/kdlspec/kdl-go/printer"
	"github.com/spf13/cobra"
)

var (
	fmtWrite     bool
	fmtList      bool
	fmtRaw       bool
	fmtIndent    int
	fmtSemicolon bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Reformat KDL documents to canonical style",
	Long: `fmt parses one or more KDL documents and rewrites them in canonical
style: sorted properties, consistent indentation, and minimal string
quoting.

By default fmt writes the reformatted document to standard output. If no
file is given, it reads from standard input.`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVar(&fmtRaw, "raw", false, "use the raw-default preset (no indentation, omit empty children)")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 4, "number of indent characters per nesting depth")
	fmtCmd.Flags().BoolVar(&fmtSemicolon, "semicolons", false, "terminate every node with ';'")
}

func runFmt(c *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}

	cfg := printer.Pretty()
	if fmtRaw {
		cfg = printer.Raw()
	}
	if c.Flags().Changed("indent") {
		cfg.Indent = fmtIndent
	}
	cfg.RequireSemicolons = fmtSemicolon
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(args) == 0 {
		return formatStdin(cfg)
	}

	hasErrors := false
	for _, path := range args {
		if err := formatFile(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatStdin(cfg *printer.Config) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	formatted, err := formatSource(string(src), cfg)
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func formatFile(path string, cfg *printer.Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	original := string(src)
	formatted, err := formatSource(original, cfg)
	if err != nil {
		return err
	}

	changed := original != formatted
	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			if verbose {
				fmt.Printf("formatted %s\n", filepath.Clean(path))
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

func formatSource(source string, cfg *printer.Config) (string, error) {
	doc, err := kdl.ParseString(source)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	var b strings.Builder
	if err := kdl.Write(&b, doc, cfg); err != nil {
		return "", fmt.Errorf("print error: %w", err)
	}
	return b.String(), nil
}
