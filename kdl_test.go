package kdl

import (
	"strings"
	"testing"

	"github.com/kdlspec/kdl-go/printer"
)

func TestParseStringThenWriteRoundTrips(t *testing.T) {
	src := "node a=1 b=2 c=3\n"
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	got, err := String(doc, printer.Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != src {
		t.Errorf("round trip = %q, want %q", got, src)
	}
}

func TestParsePreservesNumberRadixAcrossRoundTrip(t *testing.T) {
	src := "n 0xFF 0o17 0b1010\n"
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	got, err := String(doc, printer.Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != src {
		t.Errorf("round trip = %q, want %q (radix case fidelity)", got, src)
	}
}

func TestParseWithNestedChildren(t *testing.T) {
	src := "parent {\nchild 1\nchild 2\n}\n"
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	got, err := String(doc, printer.Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != src {
		t.Errorf("round trip = %q, want %q", got, src)
	}
}

func TestParseReaderMatchesParseString(t *testing.T) {
	src := "node 1 2\n"
	fromString, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	fromReader, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(fromString.Nodes) != len(fromReader.Nodes) {
		t.Fatalf("node count mismatch: %d vs %d", len(fromString.Nodes), len(fromReader.Nodes))
	}
}

func TestWriteWithNilConfigUsesPretty(t *testing.T) {
	doc, err := ParseString("node 1\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	var b strings.Builder
	if err := Write(&b, doc, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(b.String(), "node 1") {
		t.Errorf("Write() output = %q, want it to contain \"node 1\"", b.String())
	}
}

func TestParseInvalidDocumentReturnsLocatedError(t *testing.T) {
	_, err := ParseString("node {\n")
	if err == nil {
		t.Fatalf("ParseString() on truncated child block succeeded, want error")
	}
}
