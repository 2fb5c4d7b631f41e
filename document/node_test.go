package document

import "testing"

func TestNewNodeHasInitializedProperties(t *testing.T) {
	n := NewNode()
	if n.Properties == nil {
		t.Fatalf("NewNode().Properties is nil")
	}
	if n.Properties.Len() != 0 {
		t.Errorf("NewNode().Properties.Len() = %d, want 0", n.Properties.Len())
	}
}

func TestNodeAddArgumentAndProperty(t *testing.T) {
	n := NewNode()
	n.SetName("server")
	n.AddArgument(NewString("localhost"))
	n.AddProperty("port", NewNumber(Number{Radix: 10, Digits: "8080"}))

	if n.Name.AsString() != "server" {
		t.Errorf("Name.AsString() = %q, want \"server\"", n.Name.AsString())
	}
	if len(n.Arguments) != 1 || n.Arguments[0].Str != "localhost" {
		t.Errorf("Arguments = %+v, want one argument \"localhost\"", n.Arguments)
	}
	if got := n.Properties.Get("port"); got == nil || got.Num.Digits != "8080" {
		t.Errorf("Properties.Get(port) = %+v, want digits 8080", got)
	}
}

func TestNodeShallowCopySharesUnderlyingSlices(t *testing.T) {
	n := NewNode()
	n.AddArgument(NewString("a"))

	cp := n.ShallowCopy()
	cp.Arguments[0] = NewString("b")

	if n.Arguments[0].Str != "b" {
		t.Errorf("ShallowCopy() did not alias the Arguments backing array as expected")
	}
}

func TestNodeExpectArgumentsGrowsCapacity(t *testing.T) {
	n := NewNode()
	n.ExpectArguments(4)
	if cap(n.Arguments) < 4 {
		t.Errorf("cap(Arguments) = %d, want >= 4", cap(n.Arguments))
	}
	if len(n.Arguments) != 0 {
		t.Errorf("len(Arguments) = %d, want 0", len(n.Arguments))
	}
}
