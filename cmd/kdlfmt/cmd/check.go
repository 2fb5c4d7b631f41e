package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kdlspec/kdl-go"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate that files contain well-formed KDL",
	Long: `check parses each given file (or standard input, if none are given)
and reports a non-zero exit status if any of them fail to parse.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if _, err := kdl.ParseString(string(src)); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return nil
	}

	hasErrors := false
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			hasErrors = true
			continue
		}
		if _, err := kdl.ParseString(string(src)); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			hasErrors = true
			continue
		}
		if verbose {
			fmt.Printf("%s: ok\n", path)
		}
	}
	if hasErrors {
		return fmt.Errorf("one or more files failed validation")
	}
	return nil
}
