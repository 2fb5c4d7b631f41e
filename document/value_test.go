package document

import "testing"

func TestNumberString(t *testing.T) {
	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"decimal", Number{Radix: 10, Digits: "255"}, "255"},
		{"hex", Number{Radix: 16, Digits: "1F"}, "0x1F"},
		{"octal", Number{Radix: 8, Digits: "17"}, "0o17"},
		{"binary", Number{Radix: 2, Digits: "1010"}, "0b1010"},
		{"negative", Number{Radix: 10, Negative: true, Digits: "5"}, "-5"},
		{"fraction", Number{Radix: 10, Digits: "3", HasFrac: true, Frac: "14"}, "3.14"},
		{"exponent", Number{Radix: 10, Digits: "3", HasFrac: true, Frac: "14", HasExponent: true, Exp: "2"}, "3.14e2"},
		{"negative exponent", Number{Radix: 10, Digits: "1", HasExponent: true, ExpNegative: true, Exp: "5"}, "1e-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.String(); got != tt.want {
				t.Errorf("Number.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	a := NewNumber(Number{Radix: 16, Digits: "1F"})
	b := NewNumber(Number{Radix: 16, Digits: "1F"})
	c := NewNumber(Number{Radix: 10, Digits: "31"})

	if !a.Equal(b) {
		t.Errorf("identical hex values compared unequal")
	}
	if a.Equal(c) {
		t.Errorf("same magnitude, different radix compared equal; radix is part of identity")
	}

	typedA := NewString("x").WithType("foo")
	typedB := NewString("x").WithType("foo")
	untyped := NewString("x")
	if !typedA.Equal(typedB) {
		t.Errorf("same type annotation and value compared unequal")
	}
	if typedA.Equal(untyped) {
		t.Errorf("differing type annotation compared equal")
	}
}

func TestValueAsNumber(t *testing.T) {
	v := NewString("0x1F")
	n, ok := v.AsNumber()
	if !ok {
		t.Fatalf("AsNumber() on numeric string failed")
	}
	if n.Radix != 16 || n.Digits != "1F" {
		t.Errorf("AsNumber() = %+v, want radix 16 digits 1F", n)
	}

	if _, ok := NewString("not a number").AsNumber(); ok {
		t.Errorf("AsNumber() on non-numeric string succeeded")
	}

	fallback := Number{Radix: 10, Digits: "0"}
	if got := NewNull().NumberOrElse(fallback); got != fallback {
		t.Errorf("NumberOrElse() on null = %+v, want fallback", got)
	}
}

func TestValueAsBoolean(t *testing.T) {
	if b, ok := NewString("true").AsBoolean(); !ok || !b {
		t.Errorf("AsBoolean() on \"true\" = %v, %v", b, ok)
	}
	if b, ok := NewString("false").AsBoolean(); !ok || b {
		t.Errorf("AsBoolean() on \"false\" = %v, %v", b, ok)
	}
	if _, ok := NewString("maybe").AsBoolean(); ok {
		t.Errorf("AsBoolean() on \"maybe\" succeeded")
	}
	if got := NewNull().BooleanOrElse(true); got != true {
		t.Errorf("BooleanOrElse() on null = %v, want fallback true", got)
	}
}

func TestParseNumberString(t *testing.T) {
	tests := []struct {
		s       string
		wantOK  bool
		radix   int
		digits  string
	}{
		{"255", true, 10, "255"},
		{"0x1F", true, 16, "1F"},
		{"0o17", true, 8, "17"},
		{"0b1010", true, 2, "1010"},
		{"1_000", true, 10, "1000"},
		{"not a number", false, 0, ""},
		{"", false, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			n, ok := ParseNumberString(tt.s)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumberString(%q) ok = %v, want %v", tt.s, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if n.Radix != tt.radix || n.Digits != tt.digits {
				t.Errorf("ParseNumberString(%q) = %+v, want radix %d digits %q", tt.s, n, tt.radix, tt.digits)
			}
		})
	}
}

func TestIsBareString(t *testing.T) {
	if !NewString("foo").IsBareString() {
		t.Errorf("IsBareString() on \"foo\" = false")
	}
	if NewString("has space").IsBareString() {
		t.Errorf("IsBareString() on \"has space\" = true")
	}
	if NewNumber(Number{Radix: 10, Digits: "1"}).IsBareString() {
		t.Errorf("IsBareString() on a Number = true")
	}
}
