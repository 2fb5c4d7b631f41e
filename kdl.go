// Package kdl provides the top-level Parse and Write entry points for the
// KDL document language: parsing a character stream into a document.Document
// and rendering one back out under a printer.Config.
package kdl

import (
	"io"
	"strings"

	"github.com/kdlspec/kdl-go/document"
	"github.com/kdlspec/kdl-go/internal/parser"
	"github.com/kdlspec/kdl-go/internal/parsectx"
	"github.com/kdlspec/kdl-go/printer"
)

// Parse parses a complete KDL document from r.
func Parse(r io.Reader) (*document.Document, error) {
	ctx := parsectx.New(r)
	return parser.New().Parse(ctx)
}

// ParseString parses a complete KDL document from s.
func ParseString(s string) (*document.Document, error) {
	return Parse(strings.NewReader(s))
}

// Write renders doc to w under cfg. A nil cfg uses printer.Pretty().
func Write(w io.Writer, doc *document.Document, cfg *printer.Config) error {
	if cfg == nil {
		cfg = printer.Pretty()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return printer.New(cfg).Print(w, doc)
}

// String renders doc to a string under cfg. A nil cfg uses printer.Pretty().
func String(doc *document.Document, cfg *printer.Config) (string, error) {
	if cfg == nil {
		cfg = printer.Pretty()
	}
	return printer.String(doc, cfg)
}
