package printer

import (
	"testing"

	"github.com/kdlspec/kdl-go/document"
)

func node(name string) *document.Node {
	n := document.NewNode()
	n.SetName(name)
	return n
}

func TestConfigValidateRejectsBadNewline(t *testing.T) {
	c := NewConfig()
	c.Newline = "x"
	if err := c.Validate(); err == nil {
		t.Errorf("Validate() succeeded with non-line-space newline")
	}
}

func TestConfigValidateRejectsBadExponentChar(t *testing.T) {
	c := NewConfig()
	c.ExponentChar = 'q'
	if err := c.Validate(); err == nil {
		t.Errorf("Validate() succeeded with invalid exponent char")
	}
}

func TestConfigValidateAcceptsPrettyAndRaw(t *testing.T) {
	if err := Pretty().Validate(); err != nil {
		t.Errorf("Pretty().Validate() error = %v", err)
	}
	if err := Raw().Validate(); err != nil {
		t.Errorf("Raw().Validate() error = %v", err)
	}
}

func TestPrintSimpleNodeWithProperties(t *testing.T) {
	doc := document.New()
	n := node("node")
	n.AddProperty("c", document.NewNumber(document.Number{Radix: 10, Digits: "3"}))
	n.AddProperty("a", document.NewNumber(document.Number{Radix: 10, Digits: "1"}))
	n.AddProperty("b", document.NewNumber(document.Number{Radix: 10, Digits: "2"}))
	doc.AddNode(n)

	got, err := String(doc, Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "node a=1 b=2 c=3\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrintChildBlockIndentation(t *testing.T) {
	doc := document.New()
	parent := node("parent")
	c1 := node("child")
	c1.AddArgument(document.NewNumber(document.Number{Radix: 10, Digits: "1"}))
	c2 := node("child")
	c2.AddArgument(document.NewNumber(document.Number{Radix: 10, Digits: "2"}))
	parent.Children = []*document.Node{c1, c2}
	doc.AddNode(parent)

	got, err := String(doc, Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "parent {\nchild 1\nchild 2\n}\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrintArgumentStringsAlwaysQuoted(t *testing.T) {
	// Arguments and property values are never allowed to render bare, even
	// when their text is a valid bare identifier - only node names,
	// property keys, and type annotations may.
	doc := document.New()
	n := node("node")
	n.AddArgument(document.NewString("plain"))
	n.AddArgument(document.NewString("has space"))
	doc.AddNode(n)

	got, err := String(doc, Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "node \"plain\" \"has space\"\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrintNodeNameAndPropertyKeyRenderBare(t *testing.T) {
	doc := document.New()
	n := node("node")
	n.AddProperty("plain", document.NewNumber(document.Number{Radix: 10, Digits: "1"}))
	doc.AddNode(n)

	got, err := String(doc, Raw())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "node plain=1\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrintNumberRespectRadix(t *testing.T) {
	v := document.NewNumber(document.Number{Radix: 16, Digits: "FF"})
	doc := document.New()
	n := node("n")
	n.AddArgument(v)
	doc.AddNode(n)

	withRadix := Raw()
	withRadix.RespectRadix = true
	got, _ := String(doc, withRadix)
	if got != "n 0xFF\n" {
		t.Errorf("with RespectRadix: got %q, want \"n 0xFF\\n\"", got)
	}

	withoutRadix := Raw()
	withoutRadix.RespectRadix = false
	got, _ = String(doc, withoutRadix)
	if got != "n 255\n" {
		t.Errorf("without RespectRadix: got %q, want \"n 255\\n\" (0xFF converted to decimal)", got)
	}
}

func TestPrintNumberRespectRadixFalseConvertsBinaryAndOctal(t *testing.T) {
	doc := document.New()
	n := node("n")
	n.AddArgument(document.NewNumber(document.Number{Radix: 2, Digits: "1010"}))
	n.AddArgument(document.NewNumber(document.Number{Radix: 8, Digits: "17"}))
	n.AddArgument(document.NewNumber(document.Number{Radix: 16, Negative: true, Digits: "1F"}))
	doc.AddNode(n)

	cfg := Raw()
	cfg.RespectRadix = false
	got, err := String(doc, cfg)
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "n 10 15 -31\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrintNullArgsAndPropsToggle(t *testing.T) {
	doc := document.New()
	n := node("n")
	n.AddArgument(document.NewNull())
	n.AddProperty("p", document.NewNull())
	doc.AddNode(n)

	cfg := Raw()
	cfg.PrintNullArgs = false
	cfg.PrintNullProps = false
	got, _ := String(doc, cfg)
	if got != "n\n" {
		t.Errorf("with nulls suppressed: got %q, want \"n\\n\"", got)
	}

	cfg2 := Raw()
	cfg2.PrintNullArgs = true
	cfg2.PrintNullProps = true
	got, _ = String(doc, cfg2)
	if got != "n null p=null\n" {
		t.Errorf("with nulls printed: got %q, want \"n null p=null\\n\"", got)
	}
}

func TestPrintEmptyChildrenToggle(t *testing.T) {
	doc := document.New()
	n := node("n")
	n.Children = []*document.Node{}
	doc.AddNode(n)

	withEmpty := Raw()
	withEmpty.PrintEmptyChildren = true
	got, _ := String(doc, withEmpty)
	if got != "n {\n}\n" {
		t.Errorf("PrintEmptyChildren=true: got %q, want \"n {\\n}\\n\"", got)
	}

	withoutEmpty := Raw()
	withoutEmpty.PrintEmptyChildren = false
	got, _ = String(doc, withoutEmpty)
	if got != "n\n" {
		t.Errorf("PrintEmptyChildren=false: got %q, want \"n\\n\"", got)
	}
}

func TestPrintRequireSemicolons(t *testing.T) {
	doc := document.New()
	doc.AddNode(node("n"))
	cfg := Raw()
	cfg.RequireSemicolons = true
	got, _ := String(doc, cfg)
	if got != "n;\n" {
		t.Errorf("got %q, want \"n;\\n\"", got)
	}
}

func TestQuoteStringFormFeedRendersAsUnicodeEscape(t *testing.T) {
	p := New(Pretty())
	got := p.quoteString("\x0c", false)
	if got != `"\u{c}"` {
		t.Errorf("quoteString(form feed) = %q, want %q", got, `"\u{c}"`)
	}
}

func TestQuoteStringEmpty(t *testing.T) {
	p := New(Pretty())
	if got := p.quoteString("", true); got != `""` {
		t.Errorf("quoteString(\"\") = %q, want %q", got, `""`)
	}
}
