// Package printer implements components E and F of the KDL core: a
// validated PrintConfig and the Printer that walks a document.Document
// and renders it to canonical KDL text.
package printer

import (
	"fmt"

	"github.com/kdlspec/kdl-go/internal/ctype"
)

// Config controls how a Printer renders a document. The zero value is not
// valid; build one with NewConfig, Pretty, or Raw.
type Config struct {
	// Escapes is an additional set of code points to force-escape inside
	// quoted strings, beyond the policy below.
	Escapes map[rune]bool
	// EscapeNonPrintableASCII escapes ASCII control characters other than
	// the common-escape and line-space sets.
	EscapeNonPrintableASCII bool
	// EscapeLineSpace escapes Unicode line-space characters inside
	// strings.
	EscapeLineSpace bool
	// EscapeNonASCII escapes every code point above 127.
	EscapeNonASCII bool
	// EscapeCommon escapes \b \n \f \t \r \\ \" using their short forms,
	// except form feed, which is written as \u{c}.
	EscapeCommon bool

	// RequireSemicolons appends ';' after every node.
	RequireSemicolons bool
	// RespectRadix preserves 0x/0o/0b prefixes on output; if false, every
	// number is rendered in decimal.
	RespectRadix bool

	// Newline is the newline string; it must consist entirely of
	// line-space characters.
	Newline string
	// Indent is the number of Indent widths (indent characters) per
	// nesting depth.
	Indent int
	// IndentChar is the single character repeated Indent times per
	// nesting depth; it must be Unicode whitespace.
	IndentChar rune
	// ExponentChar is 'e' or 'E', used when rendering a number with an
	// exponent.
	ExponentChar rune

	// PrintEmptyChildren emits " {", a newline, and a closing "}" for a
	// node whose child block is present but has no nodes in it.
	PrintEmptyChildren bool
	// PrintNullArgs emits null-valued arguments; if false, they are
	// skipped.
	PrintNullArgs bool
	// PrintNullProps emits null-valued properties; if false, they are
	// skipped.
	PrintNullProps bool
}

// NewConfig returns the pretty-default configuration; fields may be
// adjusted on the returned value before use, then validated with
// Validate.
func NewConfig() *Config {
	return &Config{
		EscapeNonPrintableASCII: true,
		EscapeLineSpace:         true,
		EscapeCommon:            true,
		RespectRadix:            true,
		Newline:                 "\n",
		Indent:                  4,
		IndentChar:              ' ',
		ExponentChar:            'E',
		PrintEmptyChildren:      true,
		PrintNullArgs:           true,
		PrintNullProps:          true,
	}
}

// Pretty returns the pretty-default preset.
func Pretty() *Config {
	return NewConfig()
}

// Raw returns the raw-default preset: no indentation and empty child
// blocks are omitted entirely.
func Raw() *Config {
	c := NewConfig()
	c.Indent = 0
	c.PrintEmptyChildren = false
	return c
}

// Validate reports a descriptive error if c's fields are not internally
// consistent, per the constructor rules in spec §6.
func (c *Config) Validate() error {
	for _, r := range c.Newline {
		if !ctype.IsLineSpace(r) {
			return fmt.Errorf("printer: newline %q contains a non-line-space character %q", c.Newline, r)
		}
	}
	if c.Indent > 0 && !ctype.IsUnicodeWhitespace(c.IndentChar) && c.IndentChar != ' ' {
		return fmt.Errorf("printer: indent char %q is not Unicode whitespace", c.IndentChar)
	}
	if c.ExponentChar != 'e' && c.ExponentChar != 'E' {
		return fmt.Errorf("printer: exponent char %q must be 'e' or 'E'", c.ExponentChar)
	}
	return nil
}

// requiresEscape reports whether c must be escaped inside a quoted
// string under this configuration (spec §4.F requires_escape).
func (cfg *Config) requiresEscape(r rune) bool {
	if cfg.Escapes != nil && cfg.Escapes[r] {
		return true
	}
	if r == '\\' || r == '"' {
		return true
	}
	if cfg.EscapeLineSpace && ctype.IsLineSpace(r) {
		return true
	}
	if cfg.EscapeNonPrintableASCII && r < 0x80 && !ctype.IsPrintableASCII(r) && !isCommonEscapeOrSpace(r) {
		return true
	}
	if cfg.EscapeNonASCII && r > 127 {
		return true
	}
	if cfg.EscapeCommon && isCommon(r) {
		return true
	}
	return false
}

func isCommon(r rune) bool {
	switch r {
	case '\b', '\n', '\f', '\t', '\r', '\\', '"':
		return true
	default:
		return false
	}
}

// isCommonEscapeOrSpace excludes the common-escape set and ordinary space
// from the "non-printable ASCII" bucket, since those are governed by
// EscapeCommon (or are printable) rather than EscapeNonPrintableASCII.
func isCommonEscapeOrSpace(r rune) bool {
	return isCommon(r) || r == ' '
}
