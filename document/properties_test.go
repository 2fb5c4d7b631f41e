package document

import (
	"reflect"
	"testing"
)

func TestPropertiesLastWriteWins(t *testing.T) {
	p := NewProperties()
	p.Set("a", NewNumber(Number{Radix: 10, Digits: "1"}))
	p.Set("a", NewNumber(Number{Radix: 10, Digits: "2"}))

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	got := p.Get("a")
	if got == nil || got.Num.Digits != "2" {
		t.Errorf("Get(a) = %+v, want digits 2", got)
	}
}

func TestPropertiesInsertionOrderPreserved(t *testing.T) {
	p := NewProperties()
	p.Set("b", NewString("x"))
	p.Set("a", NewString("y"))
	p.Set("b", NewString("z")) // re-set b; must not move to the end

	want := []string{"b", "a"}
	if got := p.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestPropertiesSortedKeys(t *testing.T) {
	p := NewProperties()
	p.Set("c", NewString("1"))
	p.Set("a", NewString("2"))
	p.Set("b", NewString("3"))

	want := []string{"a", "b", "c"}
	if got := p.SortedKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
}

func TestPropertiesEqual(t *testing.T) {
	a := NewProperties()
	a.Set("x", NewNumber(Number{Radix: 10, Digits: "1"}))

	b := NewProperties()
	b.Set("x", NewNumber(Number{Radix: 10, Digits: "1"}))

	if !a.Equal(b) {
		t.Errorf("Equal() = false for identical property sets")
	}

	b.Set("y", NewBoolean(true))
	if a.Equal(b) {
		t.Errorf("Equal() = true for property sets of different size")
	}
}
