// Package ctype classifies the individual code points the KDL grammar cares
// about: digits in each supported radix, bare-identifier boundaries, the
// Unicode whitespace/line-space sets, and the handful of characters that
// carry a common (short-form) string escape.
package ctype

// IsDecimalDigit reports whether c is a decimal digit (0-9).
func IsDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is a valid hexadecimal digit.
func IsHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsOctalDigit reports whether c is a valid octal digit (0-7).
func IsOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

// IsBinaryDigit reports whether c is a valid binary digit (0 or 1).
func IsBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

// IsNumericStart reports whether c may begin a number: a decimal digit or a
// sign character.
func IsNumericStart(c rune) bool {
	return IsDecimalDigit(c) || c == '+' || c == '-'
}

// IsSign reports whether c is a sign character.
func IsSign(c rune) bool {
	return c == '+' || c == '-'
}

// IsLineSpace reports whether c terminates a line: LF, CR, NEL, FF, LS, or PS.
func IsLineSpace(c rune) bool {
	switch c {
	case '\n', '\r', '', '', ' ', ' ':
		return true
	default:
		return false
	}
}

// IsUnicodeWhitespace reports whether c is horizontal Unicode whitespace
// (not line-space).
func IsUnicodeWhitespace(c rune) bool {
	switch c {
	case '	', ' ', ' ', ' ',
		' ', ' ', ' ', ' ', ' ',
		' ', ' ', ' ', ' ', ' ', ' ',
		' ', ' ', '　':
		return true
	default:
		return false
	}
}

// IsWhitespaceOrLineSpace reports whether c is any kind of KDL whitespace,
// horizontal or line-terminating.
func IsWhitespaceOrLineSpace(c rune) bool {
	return IsUnicodeWhitespace(c) || IsLineSpace(c)
}

// isBareExcludedPunctuation lists the punctuation forbidden in a bare
// identifier even though it falls inside the otherwise-permitted code point
// range.
func isBareExcludedPunctuation(c rune) bool {
	switch c {
	case '\\', '/', '(', ')', '{', '}', '<', '>', ';', '[', ']', '=', ',', '"':
		return true
	default:
		return false
	}
}

// IsBareIdentifierContinue reports whether c may appear anywhere in a bare
// identifier after its first character.
func IsBareIdentifierContinue(c rune) bool {
	if c <= 0x20 || c > 0x10FFFF {
		return false
	}
	if IsLineSpace(c) || IsUnicodeWhitespace(c) {
		return false
	}
	return !isBareExcludedPunctuation(c)
}

// IsBareIdentifierStart reports whether c may begin a bare identifier. Signs
// are permitted as starts; callers must disambiguate a leading sign from a
// number by peeking the following character.
func IsBareIdentifierStart(c rune) bool {
	if !IsBareIdentifierContinue(c) {
		return false
	}
	return !IsDecimalDigit(c)
}

// IsLiteralKeywordChar reports whether c can appear in one of the keyword
// literals true, false, or null.
func IsLiteralKeywordChar(c rune) bool {
	switch c {
	case 't', 'r', 'u', 'e', 'n', 'l', 'f', 'a', 's':
		return true
	default:
		return false
	}
}

// IsCommonEscape reports whether c is one of the characters with a
// short-form ("common") string escape: backslash, backspace, newline, form
// feed, tab, carriage return, or double quote.
func IsCommonEscape(c rune) bool {
	switch c {
	case '\\', '\b', '\n', '\f', '\t', '\r', '"':
		return true
	default:
		return false
	}
}

// IsPrintableASCII reports whether c is a printable (non-control) ASCII
// character.
func IsPrintableASCII(c rune) bool {
	return c >= 0x20 && c < 0x7F
}

// IsBareIdentifier reports whether s, taken as a whole, is a valid bare
// identifier: non-empty, with a valid start character followed by valid
// continuation characters. A leading +/- followed by a decimal digit is
// rejected, since that text would parse back as a number; a +/- followed by
// anything else is a valid start.
func IsBareIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	if len(s) > 1 && IsSign(rune(s[0])) && IsDecimalDigit(rune(s[1])) {
		return false
	}
	first := true
	for _, r := range s {
		if first {
			if !IsBareIdentifierStart(r) {
				return false
			}
			first = false
		} else if !IsBareIdentifierContinue(r) {
			return false
		}
	}
	return true
}
