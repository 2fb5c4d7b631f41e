package document

import (
	"strings"

	"github.com/kdlspec/kdl-go/internal/ctype"
)

// Kind identifies which of the four KDL value variants a Value holds.
type Kind uint8

const (
	// KindString indicates Value.Str is valid.
	KindString Kind = iota
	// KindNumber indicates Value.Num is valid.
	KindNumber
	// KindBoolean indicates Value.Bool is valid.
	KindBoolean
	// KindNull indicates the value is the KDL null literal; no payload
	// field is valid.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Number is a KDL numeric literal: an arbitrary-precision decimal magnitude
// (radix 10) or arbitrary-precision integer magnitude (radix 2/8/16),
// together with the radix it was written in.
//
// The magnitude is kept as the exact validated digit text rather than a
// math/big value so that printing a Number recovers the radix and digit
// casing the value was parsed with (spec invariant: parsing 0x1F and
// printing it again yields 0x1F, not 0x1f) without attempting to interpret
// whether two differently-formatted literals represent the same magnitude.
type Number struct {
	// Radix is 2, 8, 10, or 16.
	Radix int
	// Negative is true if the literal carried a leading '-'.
	Negative bool
	// Digits is the integer-part (or, for radix != 10, the whole magnitude)
	// digit string in Radix, underscores and radix prefix already removed,
	// case preserved exactly as written.
	Digits string
	// Frac is the fractional digit string (radix 10 only); "" if the
	// literal had no fractional part.
	Frac string
	// HasFrac distinguishes "no fraction" from an empty-but-present
	// fraction, which the grammar never actually produces but which keeps
	// the zero value unambiguous.
	HasFrac bool
	// HasExponent records whether the literal carried an e/E exponent
	// (radix 10 only).
	HasExponent bool
	// ExpNegative is the sign of the exponent.
	ExpNegative bool
	// Exp is the exponent digit string, sign removed.
	Exp string
}

// String renders the Number's digits using a lowercase 'e' for the
// exponent marker; Printer is responsible for the configurable exponent
// case and for whether the radix prefix is emitted at all.
func (n Number) String() string {
	var b strings.Builder
	if n.Negative {
		b.WriteByte('-')
	}
	switch n.Radix {
	case 2:
		b.WriteString("0b")
	case 8:
		b.WriteString("0o")
	case 16:
		b.WriteString("0x")
	}
	b.WriteString(n.Digits)
	if n.HasFrac {
		b.WriteByte('.')
		b.WriteString(n.Frac)
	}
	if n.HasExponent {
		b.WriteByte('e')
		if n.ExpNegative {
			b.WriteByte('-')
		}
		b.WriteString(n.Exp)
	}
	return b.String()
}

// Value is a single KDL value: one of String, Number, Boolean, or Null,
// optionally carrying a type annotation.
type Value struct {
	Kind Kind
	// Type is the type annotation carried by this value, or "" if none.
	// Type annotations are opaque; the parser validates only that they are
	// well-formed identifiers.
	Type string

	Str  string
	Num  Number
	Bool bool
}

// NewString creates an untyped string Value.
func NewString(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

// NewBoolean creates an untyped boolean Value.
func NewBoolean(b bool) *Value {
	return &Value{Kind: KindBoolean, Bool: b}
}

// NewNull creates an untyped null Value.
func NewNull() *Value {
	return &Value{Kind: KindNull}
}

// NewNumber creates an untyped Number Value.
func NewNumber(n Number) *Value {
	return &Value{Kind: KindNumber, Num: n}
}

// WithType returns v with its type annotation set to t; v is mutated and
// returned for chaining.
func (v *Value) WithType(t string) *Value {
	v.Type = t
	return v
}

// Equal reports whether v and other represent the same value: same kind,
// same type annotation, and same payload. Two Number values with the same
// magnitude but different radixes, or different literal digit text, are NOT
// equal (spec §3 invariants).
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Kind != other.Kind || v.Type != other.Type {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == other.Str
	case KindNumber:
		return v.Num == other.Num
	case KindBoolean:
		return v.Bool == other.Bool
	case KindNull:
		return true
	default:
		return false
	}
}

// AsString always succeeds: it yields the value's lexical rendering (e.g.
// "null" for a Null value, "true"/"false" for a Boolean, the literal
// rendering of Number.String for a Number, radix prefix included).
func (v *Value) AsString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.String()
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// AsNumber returns (Number, true) when this value is a Number, or when it
// is a String that can be re-parsed as one. It is undefined (false) for
// Boolean and Null.
func (v *Value) AsNumber() (Number, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindString:
		return ParseNumberString(v.Str)
	default:
		return Number{}, false
	}
}

// NumberOrElse is AsNumber with a caller-supplied fallback.
func (v *Value) NumberOrElse(fallback Number) Number {
	if n, ok := v.AsNumber(); ok {
		return n
	}
	return fallback
}

// AsBoolean returns (bool, true) when this value is a Boolean, or when it
// is a String matching exactly "true" or "false". It is undefined (false)
// for Number and Null.
func (v *Value) AsBoolean() (bool, bool) {
	switch v.Kind {
	case KindBoolean:
		return v.Bool, true
	case KindString:
		switch v.Str {
		case "true":
			return true, true
		case "false":
			return false, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}

// BooleanOrElse is AsBoolean with a caller-supplied fallback.
func (v *Value) BooleanOrElse(fallback bool) bool {
	if b, ok := v.AsBoolean(); ok {
		return b
	}
	return fallback
}

// IsBareString reports whether v is a string value that can be printed
// without quoting.
func (v *Value) IsBareString() bool {
	return v.Kind == KindString && ctype.IsBareIdentifier(v.Str)
}

// ParseNumberString attempts to parse s as a standalone KDL number literal
// (optional sign, optional 0x/0o/0b radix prefix, digit-separator
// underscores, and for radix 10 an optional fraction and exponent). It is
// used by Value.AsNumber to coerce a String value, independent of the
// streaming parser in internal/parser which builds the same structure
// incrementally while scanning a document.
func ParseNumberString(s string) (Number, bool) {
	i := 0
	n := len(s)
	if i >= n {
		return Number{}, false
	}

	var negative bool
	if s[i] == '+' || s[i] == '-' {
		negative = s[i] == '-'
		i++
	}
	if i >= n || !ctype.IsDecimalDigit(rune(s[i])) {
		return Number{}, false
	}

	radix := 10
	start := i
	if s[i] == '0' && i+1 < n {
		switch s[i+1] {
		case 'x':
			radix = 16
			i += 2
			start = i
		case 'o':
			radix = 8
			i += 2
			start = i
		case 'b':
			radix = 2
			i += 2
			start = i
		}
	}

	isRadixDigit := ctype.IsDecimalDigit
	switch radix {
	case 16:
		isRadixDigit = ctype.IsHexDigit
	case 8:
		isRadixDigit = ctype.IsOctalDigit
	case 2:
		isRadixDigit = ctype.IsBinaryDigit
	}

	if radix != 10 {
		var digits strings.Builder
		sawDigit := false
		for i < n {
			c := rune(s[i])
			if isRadixDigit(c) {
				digits.WriteByte(s[i])
				sawDigit = true
				i++
			} else if c == '_' && sawDigit {
				i++
			} else {
				break
			}
		}
		if !sawDigit || i != n {
			return Number{}, false
		}
		return Number{Radix: radix, Negative: negative, Digits: digits.String()}, true
	}

	var intPart strings.Builder
	for i < n && (ctype.IsDecimalDigit(rune(s[i])) || (s[i] == '_' && intPart.Len() > 0)) {
		if s[i] != '_' {
			intPart.WriteByte(s[i])
		}
		i++
	}
	if intPart.Len() == 0 {
		intPart.WriteString(s[start:i])
	}

	var frac strings.Builder
	hasFrac := false
	if i < n && s[i] == '.' {
		i++
		hasFrac = true
		for i < n && (ctype.IsDecimalDigit(rune(s[i])) || s[i] == '_') {
			if s[i] != '_' {
				frac.WriteByte(s[i])
			}
			i++
		}
		if frac.Len() == 0 {
			return Number{}, false
		}
	}

	hasExp := false
	expNeg := false
	var exp strings.Builder
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		hasExp = true
		if i < n && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		for i < n && (ctype.IsDecimalDigit(rune(s[i])) || s[i] == '_') {
			if s[i] != '_' {
				exp.WriteByte(s[i])
			}
			i++
		}
		if exp.Len() == 0 {
			return Number{}, false
		}
	}

	if i != n {
		return Number{}, false
	}

	return Number{
		Radix:       10,
		Negative:    negative,
		Digits:      intPart.String(),
		Frac:        frac.String(),
		HasFrac:     hasFrac,
		HasExponent: hasExp,
		ExpNegative: expNeg,
		Exp:         exp.String(),
	}, true
}
