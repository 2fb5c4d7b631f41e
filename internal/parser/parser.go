// Package parser implements component D of the KDL core: a recursive-
// descent parser driven directly off a parsectx.Context character stream,
// with no separate tokenization pass. Each grammar production (document,
// node, argument-or-property, value, number, identifier, string, type
// annotation) is its own function that reads exactly the characters it
// needs and leaves the context positioned just past them.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kdlspec/kdl-go/document"
	"github.com/kdlspec/kdl-go/internal/ctype"
	"github.com/kdlspec/kdl-go/internal/kdlerr"
	"github.com/kdlspec/kdl-go/internal/parsectx"
)

// whitespaceOutcome is the result of absorbing a run of whitespace and
// comments: how much was crossed and whether it terminated a node or
// introduced a skip marker.
type whitespaceOutcome int

const (
	noWhitespace whitespaceOutcome = iota
	nodeSpace
	endNode
	skipNext
)

// Parser holds no state of its own; every method takes the Context it
// operates on, so a single Parser may be reused (or left as the zero
// value) across any number of concurrent parses.
type Parser struct{}

// New returns a ready-to-use Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses a complete document from ctx. On any error, ctx is
// invalidated exactly once (its location snapshot is attached to the
// returned error) before the error is returned.
func (p *Parser) Parse(ctx *parsectx.Context) (doc *document.Document, err error) {
	doc, err = p.parseDocumentBody(ctx, false)
	if err != nil {
		return nil, attachLocation(ctx, err)
	}
	return doc, nil
}

func attachLocation(ctx *parsectx.Context, err error) error {
	if ctx.Invalidated() {
		return err
	}
	loc := ctx.ErrorLocation()
	switch e := err.(type) {
	case *kdlerr.ParseError:
		if e.Location == "" {
			e.Location = loc
		}
	case *kdlerr.InternalError:
		if e.Location == "" {
			e.Location = loc
		}
	case *kdlerr.IOError:
		if e.Location == "" {
			e.Location = loc
		}
	}
	return err
}

// parseDocumentBody parses a sequence of nodes. insideChild distinguishes
// a top-level document (terminated only by EOF, with '}' illegal) from a
// node's child block (terminated by '}', with EOF illegal).
func (p *Parser) parseDocumentBody(ctx *parsectx.Context, insideChild bool) (*document.Document, error) {
	doc := document.New()
	skipping := false

	for {
		outcome, err := p.skipLineCrossingSpace(ctx)
		if err != nil {
			return nil, err
		}
		if outcome == skipNext {
			skipping = true
		}

		r, err := ctx.Peek()
		if err != nil {
			return nil, err
		}

		if r == parsectx.EOF {
			if insideChild {
				return nil, &kdlerr.ParseError{Msg: "Got EOF, expected a node or '}'"}
			}
			return doc, nil
		}
		if r == '}' {
			if insideChild {
				return doc, nil
			}
			return nil, &kdlerr.ParseError{Msg: "Unexpected '}' in root document"}
		}

		node, err := p.parseNode(ctx)
		if err != nil {
			return nil, err
		}
		if skipping {
			skipping = false
		} else {
			doc.AddNode(node)
		}
	}
}

// skipLineCrossingSpace absorbs horizontal whitespace, line-space, BOM,
// line comments, block comments, slashdash markers, and line-escapes,
// stopping at the first character that begins real content (or at EOF).
// It is used between nodes and around a node's child block.
func (p *Parser) skipLineCrossingSpace(ctx *parsectx.Context) (whitespaceOutcome, error) {
	outcome := noWhitespace
	for {
		r, err := ctx.Peek()
		if err != nil {
			return 0, err
		}
		switch {
		case r == parsectx.EOF:
			return endNode, nil
		case r == 0xFEFF: // byte order mark
			ctx.Read()
			if outcome == noWhitespace {
				outcome = nodeSpace
			}
		case ctype.IsLineSpace(r):
			ctx.Read()
			outcome = endNode
		case ctype.IsUnicodeWhitespace(r):
			ctx.Read()
			if outcome == noWhitespace {
				outcome = nodeSpace
			}
		case r == ';':
			ctx.Read()
			return endNode, nil
		case r == '/':
			next, err := ctx.PeekAt(1)
			if err != nil {
				return 0, err
			}
			switch next {
			case '/':
				ctx.Read()
				ctx.Read()
				if err := p.skipLineComment(ctx); err != nil {
					return 0, err
				}
				return endNode, nil
			case '*':
				ctx.Read()
				ctx.Read()
				if err := p.skipBlockComment(ctx); err != nil {
					return 0, err
				}
				if outcome == noWhitespace {
					outcome = nodeSpace
				}
			case '-':
				if err := p.consumeSlashdashMarker(ctx); err != nil {
					return 0, err
				}
				return skipNext, nil
			default:
				return outcome, nil
			}
		case r == '\\':
			next, err := ctx.PeekAt(1)
			if err != nil {
				return 0, err
			}
			if ctype.IsLineSpace(next) {
				ctx.Read()
				ctx.Read()
				if outcome == noWhitespace {
					outcome = nodeSpace
				}
				continue
			}
			return outcome, nil
		default:
			return outcome, nil
		}
	}
}

// skipNodeSpace is the non-line-crossing counterpart, used within a
// node's own body (between its type/name/arguments/properties). Unescaped
// line-space, ';', and EOF all terminate the node; a bare line comment
// does too, since it necessarily runs to end of line.
func (p *Parser) skipNodeSpace(ctx *parsectx.Context) (whitespaceOutcome, error) {
	outcome := noWhitespace
	for {
		r, err := ctx.Peek()
		if err != nil {
			return 0, err
		}
		switch {
		case r == parsectx.EOF:
			return endNode, nil
		case r == ';':
			ctx.Read()
			return endNode, nil
		case ctype.IsLineSpace(r):
			ctx.Read()
			return endNode, nil
		case ctype.IsUnicodeWhitespace(r):
			ctx.Read()
			if outcome == noWhitespace {
				outcome = nodeSpace
			}
		case r == '{':
			return outcome, nil
		case r == '/':
			next, err := ctx.PeekAt(1)
			if err != nil {
				return 0, err
			}
			switch next {
			case '/':
				ctx.Read()
				ctx.Read()
				if err := p.skipLineComment(ctx); err != nil {
					return 0, err
				}
				return endNode, nil
			case '*':
				ctx.Read()
				ctx.Read()
				if err := p.skipBlockComment(ctx); err != nil {
					return 0, err
				}
				if outcome == noWhitespace {
					outcome = nodeSpace
				}
			case '-':
				if err := p.consumeSlashdashMarker(ctx); err != nil {
					return 0, err
				}
				return skipNext, nil
			default:
				return outcome, nil
			}
		case r == '\\':
			next, err := ctx.PeekAt(1)
			if err != nil {
				return 0, err
			}
			if ctype.IsLineSpace(next) {
				ctx.Read()
				ctx.Read()
				if outcome == noWhitespace {
					outcome = nodeSpace
				}
				continue
			}
			return outcome, nil
		default:
			return outcome, nil
		}
	}
}

// consumeSlashdashMarker consumes a '/-' already identified by the caller
// (via PeekAt) and validates that it is not immediately followed by
// line-space or EOF, which the grammar forbids.
func (p *Parser) consumeSlashdashMarker(ctx *parsectx.Context) error {
	ctx.Read()
	ctx.Read()
	after, err := ctx.Peek()
	if err != nil {
		return err
	}
	if after == parsectx.EOF {
		return &kdlerr.ParseError{Msg: "Unexpected skip marker before EOF"}
	}
	if ctype.IsLineSpace(after) {
		return &kdlerr.ParseError{Msg: "Unexpected skip marker before newline"}
	}
	return nil
}

func (p *Parser) skipLineComment(ctx *parsectx.Context) error {
	for {
		r, err := ctx.Read()
		if err != nil {
			return err
		}
		if r == parsectx.EOF || ctype.IsLineSpace(r) {
			return nil
		}
	}
}

func (p *Parser) skipBlockComment(ctx *parsectx.Context) error {
	depth := 1
	for depth > 0 {
		r, err := ctx.Read()
		if err != nil {
			return err
		}
		switch r {
		case parsectx.EOF:
			return &kdlerr.ParseError{Msg: "Unexpected EOF in block comment"}
		case '/':
			n, err := ctx.Peek()
			if err != nil {
				return err
			}
			if n == '*' {
				ctx.Read()
				depth++
			}
		case '*':
			n, err := ctx.Peek()
			if err != nil {
				return err
			}
			if n == '/' {
				ctx.Read()
				depth--
			}
		}
	}
	return nil
}

// parseNode parses one node: optional type annotation, required
// identifier, and a loop over its arguments, properties, and optional
// child block.
func (p *Parser) parseNode(ctx *parsectx.Context) (*document.Node, error) {
	node := document.NewNode()

	typeAnnot, err := p.maybeParseTypeAnnotation(ctx)
	if err != nil {
		return nil, err
	}
	node.Type = typeAnnot

	name, err := p.parseIdentifierString(ctx)
	if err != nil {
		return nil, err
	}
	node.SetName(name)

	for {
		outcome, err := p.skipNodeSpace(ctx)
		if err != nil {
			return nil, err
		}

		r, err := ctx.Peek()
		if err != nil {
			return nil, err
		}

		switch {
		case outcome == endNode:
			return node, nil

		case outcome == skipNext:
			if r == '{' {
				if err := p.parseAndDiscardChildBlock(ctx); err != nil {
					return nil, err
				}
			} else {
				if _, _, _, err := p.parseArgOrProp(ctx); err != nil {
					return nil, err
				}
			}

		case r == '{':
			ctx.Read()
			child, err := p.parseDocumentBody(ctx, true)
			if err != nil {
				return nil, err
			}
			if err := p.expectCloseBrace(ctx); err != nil {
				return nil, err
			}
			node.Children = child.Nodes
			return node, nil

		default:
			isProp, key, value, err := p.parseArgOrProp(ctx)
			if err != nil {
				return nil, err
			}
			if isProp {
				node.AddProperty(key, value)
			} else {
				node.AddArgument(value)
			}
		}
	}
}

func (p *Parser) parseAndDiscardChildBlock(ctx *parsectx.Context) error {
	ctx.Read()
	if _, err := p.parseDocumentBody(ctx, true); err != nil {
		return err
	}
	return p.expectCloseBrace(ctx)
}

func (p *Parser) expectCloseBrace(ctx *parsectx.Context) error {
	c, err := ctx.Read()
	if err != nil {
		return err
	}
	if c != '}' {
		return &kdlerr.InternalError{Cause: fmt.Errorf("expected '}' to close child block, got %q", c)}
	}
	return nil
}

// parseArgOrProp parses one argument-or-property per spec §4.D.3. It
// returns isProperty=true with key/value set when it parsed a property;
// otherwise value holds the argument and key is "".
func (p *Parser) parseArgOrProp(ctx *parsectx.Context) (isProperty bool, key string, value *document.Value, err error) {
	typeAnnot, err := p.maybeParseTypeAnnotation(ctx)
	if err != nil {
		return false, "", nil, err
	}

	v, wasBare, err := p.parseValueOrBareIdentifier(ctx)
	if err != nil {
		return false, "", nil, err
	}

	r, err := ctx.Peek()
	if err != nil {
		return false, "", nil, err
	}

	if r == '=' {
		if typeAnnot != "" {
			return false, "", nil, &kdlerr.ParseError{Msg: "Type annotation not allowed before a property key"}
		}
		if v.Kind != document.KindString {
			return false, "", nil, &kdlerr.ParseError{Msg: "Property key must be a string"}
		}
		ctx.Read()
		valType, err := p.maybeParseTypeAnnotation(ctx)
		if err != nil {
			return false, "", nil, err
		}
		val, err := p.parseValue(ctx)
		if err != nil {
			return false, "", nil, err
		}
		val.Type = valType
		return true, v.Str, val, nil
	}

	if wasBare {
		return false, "", nil, &kdlerr.ParseError{Msg: "Arguments may not be bare"}
	}
	v.Type = typeAnnot
	return false, "", v, nil
}

// parseValueOrBareIdentifier implements the lexical dispatch at the head
// of an argument-or-property: strings, numbers, and raw strings parse as
// themselves; anything else that can start a bare identifier parses as a
// plain (unkeyworded) string, with wasBare reporting that fact so the
// caller can reject it as an argument.
func (p *Parser) parseValueOrBareIdentifier(ctx *parsectx.Context) (*document.Value, bool, error) {
	r, err := ctx.Peek()
	if err != nil {
		return nil, false, err
	}

	switch {
	case r == '"':
		s, err := p.parseEscapedString(ctx)
		if err != nil {
			return nil, false, err
		}
		return document.NewString(s), false, nil

	case ctype.IsSign(r):
		next, err := ctx.PeekAt(1)
		if err != nil {
			return nil, false, err
		}
		if ctype.IsDecimalDigit(next) {
			num, err := p.parseNumber(ctx)
			if err != nil {
				return nil, false, err
			}
			return document.NewNumber(num), false, nil
		}
		s, err := p.parseBareIdentifier(ctx)
		if err != nil {
			return nil, false, err
		}
		return document.NewString(s), true, nil

	case ctype.IsDecimalDigit(r):
		num, err := p.parseNumber(ctx)
		if err != nil {
			return nil, false, err
		}
		return document.NewNumber(num), false, nil

	case r == 'r':
		next, err := ctx.PeekAt(1)
		if err != nil {
			return nil, false, err
		}
		if next == '"' || next == '#' {
			s, err := p.parseRawString(ctx)
			if err != nil {
				return nil, false, err
			}
			return document.NewString(s), false, nil
		}
		s, err := p.parseBareIdentifier(ctx)
		if err != nil {
			return nil, false, err
		}
		return document.NewString(s), true, nil

	case ctype.IsBareIdentifierStart(r):
		s, err := p.parseBareIdentifier(ctx)
		if err != nil {
			return nil, false, err
		}
		return document.NewString(s), true, nil

	default:
		return nil, false, &kdlerr.ParseError{Msg: fmt.Sprintf("Unexpected character %q", r)}
	}
}

// parseValue parses the right-hand side of a property's '=', where
// true/false/null are recognized as keywords rather than bare strings.
func (p *Parser) parseValue(ctx *parsectx.Context) (*document.Value, error) {
	r, err := ctx.Peek()
	if err != nil {
		return nil, err
	}

	switch {
	case r == '"':
		s, err := p.parseEscapedString(ctx)
		if err != nil {
			return nil, err
		}
		return document.NewString(s), nil

	case r == 'r':
		next, err := ctx.PeekAt(1)
		if err != nil {
			return nil, err
		}
		if next == '"' || next == '#' {
			s, err := p.parseRawString(ctx)
			if err != nil {
				return nil, err
			}
			return document.NewString(s), nil
		}
		return p.parseKeywordLiteral(ctx)

	case ctype.IsSign(r):
		next, err := ctx.PeekAt(1)
		if err != nil {
			return nil, err
		}
		if ctype.IsDecimalDigit(next) {
			num, err := p.parseNumber(ctx)
			if err != nil {
				return nil, err
			}
			return document.NewNumber(num), nil
		}
		return p.parseKeywordLiteral(ctx)

	case ctype.IsDecimalDigit(r):
		num, err := p.parseNumber(ctx)
		if err != nil {
			return nil, err
		}
		return document.NewNumber(num), nil

	case ctype.IsLiteralKeywordChar(r):
		return p.parseKeywordLiteral(ctx)

	default:
		return nil, &kdlerr.ParseError{Msg: fmt.Sprintf("Unexpected character %q in value", r)}
	}
}

func (p *Parser) parseKeywordLiteral(ctx *parsectx.Context) (*document.Value, error) {
	var b strings.Builder
	for {
		r, err := ctx.Peek()
		if err != nil {
			return nil, err
		}
		if r == parsectx.EOF || !ctype.IsLiteralKeywordChar(r) {
			break
		}
		ctx.Read()
		b.WriteRune(r)
	}
	switch b.String() {
	case "true":
		return document.NewBoolean(true), nil
	case "false":
		return document.NewBoolean(false), nil
	case "null":
		return document.NewNull(), nil
	default:
		return nil, &kdlerr.ParseError{Msg: fmt.Sprintf("Unexpected literal %q", b.String())}
	}
}

// parseIdentifierString parses a quoted, raw, or bare identifier and
// returns its content as a plain string (component 4.D.5), used for node
// names, property keys reached via a bare word, and type annotations.
func (p *Parser) parseIdentifierString(ctx *parsectx.Context) (string, error) {
	r, err := ctx.Peek()
	if err != nil {
		return "", err
	}
	switch {
	case r == '"':
		return p.parseEscapedString(ctx)
	case r == 'r':
		next, err := ctx.PeekAt(1)
		if err != nil {
			return "", err
		}
		if next == '"' || next == '#' {
			return p.parseRawString(ctx)
		}
		return p.parseBareIdentifier(ctx)
	case ctype.IsBareIdentifierStart(r):
		return p.parseBareIdentifier(ctx)
	default:
		return "", &kdlerr.ParseError{Msg: fmt.Sprintf("Expected an identifier, got %q", r)}
	}
}

func (p *Parser) parseBareIdentifier(ctx *parsectx.Context) (string, error) {
	r, err := ctx.Peek()
	if err != nil {
		return "", err
	}
	if r == parsectx.EOF || !ctype.IsBareIdentifierStart(r) {
		return "", &kdlerr.InternalError{Cause: fmt.Errorf("bare identifier parser entered without a valid start character")}
	}
	var b strings.Builder
	ctx.Read()
	b.WriteRune(r)
	for {
		r, err := ctx.Peek()
		if err != nil {
			return "", err
		}
		if r == parsectx.EOF || !ctype.IsBareIdentifierContinue(r) {
			break
		}
		ctx.Read()
		b.WriteRune(r)
	}
	return b.String(), nil
}

// parseEscapedString parses a double-quoted string, resolving the common
// escapes and \u{...} unicode escapes (component 4.D.3 table).
func (p *Parser) parseEscapedString(ctx *parsectx.Context) (string, error) {
	open, err := ctx.Read()
	if err != nil {
		return "", err
	}
	if open != '"' {
		return "", &kdlerr.InternalError{Cause: fmt.Errorf("escaped string parser entered without a leading quote")}
	}

	var b strings.Builder
	for {
		c, err := ctx.Read()
		if err != nil {
			return "", err
		}
		if c == parsectx.EOF {
			return "", &kdlerr.ParseError{Msg: "Unexpected EOF in string"}
		}
		if c == '"' {
			return b.String(), nil
		}
		if c != '\\' {
			b.WriteRune(c)
			continue
		}

		e, err := ctx.Read()
		if err != nil {
			return "", err
		}
		switch e {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case '"':
			b.WriteByte('"')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteRune('')
		case 'u':
			r, err := p.parseUnicodeEscape(ctx)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		case parsectx.EOF:
			return "", &kdlerr.ParseError{Msg: "Unexpected EOF in string"}
		default:
			return "", &kdlerr.ParseError{Msg: "Illegal escape sequence"}
		}
	}
}

func (p *Parser) parseUnicodeEscape(ctx *parsectx.Context) (rune, error) {
	open, err := ctx.Read()
	if err != nil {
		return 0, err
	}
	if open != '{' {
		return 0, &kdlerr.ParseError{Msg: "Expected '{' after \\u"}
	}
	var hex strings.Builder
	for {
		h, err := ctx.Read()
		if err != nil {
			return 0, err
		}
		if h == '}' {
			break
		}
		if h == parsectx.EOF {
			return 0, &kdlerr.ParseError{Msg: "Unexpected EOF in unicode escape"}
		}
		if !ctype.IsHexDigit(h) {
			return 0, &kdlerr.ParseError{Msg: "Invalid hex digit in unicode escape"}
		}
		hex.WriteRune(h)
		if hex.Len() > 6 {
			return 0, &kdlerr.ParseError{Msg: "Unicode escape too long"}
		}
	}
	if hex.Len() == 0 {
		return 0, &kdlerr.ParseError{Msg: "Empty unicode escape"}
	}
	cp, err := strconv.ParseInt(hex.String(), 16, 32)
	if err != nil {
		return 0, &kdlerr.ParseError{Msg: "Invalid unicode escape"}
	}
	if cp > 0x10FFFF {
		return 0, &kdlerr.ParseError{Msg: "Unicode escape out of range"}
	}
	return rune(cp), nil
}

// parseRawString parses an r#"..."# raw string with an arbitrary number
// of '#' fences (component 4.D.3).
func (p *Parser) parseRawString(ctx *parsectx.Context) (string, error) {
	lead, err := ctx.Read()
	if err != nil {
		return "", err
	}
	if lead != 'r' {
		return "", &kdlerr.InternalError{Cause: fmt.Errorf("raw string parser entered without a leading 'r'")}
	}

	hashes := 0
	for {
		c, err := ctx.Read()
		if err != nil {
			return "", err
		}
		if c == '#' {
			hashes++
			continue
		}
		if c == '"' {
			break
		}
		return "", &kdlerr.ParseError{Msg: "Expected '\"' to begin raw string"}
	}

	var b strings.Builder
	for {
		c, err := ctx.Read()
		if err != nil {
			return "", err
		}
		if c == parsectx.EOF {
			return "", &kdlerr.ParseError{Msg: "Unexpected EOF in raw string"}
		}
		if c != '"' {
			b.WriteRune(c)
			continue
		}

		seen := 0
		overflow := false
		for {
			n, err := ctx.Peek()
			if err != nil {
				return "", err
			}
			if n != '#' {
				break
			}
			ctx.Read()
			seen++
			if seen > hashes {
				overflow = true
				break
			}
		}
		if overflow {
			return "", &kdlerr.ParseError{Msg: "Too many # characters when closing raw string"}
		}
		if seen == hashes {
			return b.String(), nil
		}
		b.WriteByte('"')
		for i := 0; i < seen; i++ {
			b.WriteByte('#')
		}
	}
}

// maybeParseTypeAnnotation consumes a leading (identifier) type
// annotation if present, returning "" if the next character is not '('.
func (p *Parser) maybeParseTypeAnnotation(ctx *parsectx.Context) (string, error) {
	r, err := ctx.Peek()
	if err != nil {
		return "", err
	}
	if r != '(' {
		return "", nil
	}
	ctx.Read()
	name, err := p.parseIdentifierString(ctx)
	if err != nil {
		return "", err
	}
	c, err := ctx.Read()
	if err != nil {
		return "", err
	}
	if c != ')' {
		return "", &kdlerr.ParseError{Msg: "Expected ')' to close type annotation"}
	}
	return name, nil
}

// parseNumber parses a number literal: optional sign, optional radix
// prefix, and the digits for that radix (component 4.D.3 number parsing).
func (p *Parser) parseNumber(ctx *parsectx.Context) (document.Number, error) {
	negative := false
	r, err := ctx.Peek()
	if err != nil {
		return document.Number{}, err
	}
	if ctype.IsSign(r) {
		ctx.Read()
		negative = r == '-'
	}

	first, err := ctx.Peek()
	if err != nil {
		return document.Number{}, err
	}
	if first == '0' {
		next, err := ctx.PeekAt(1)
		if err != nil {
			return document.Number{}, err
		}
		switch next {
		case 'x':
			ctx.Read()
			ctx.Read()
			digits, err := p.parseRadixDigits(ctx, ctype.IsHexDigit)
			if err != nil {
				return document.Number{}, err
			}
			return document.Number{Radix: 16, Negative: negative, Digits: digits}, nil
		case 'o':
			ctx.Read()
			ctx.Read()
			digits, err := p.parseRadixDigits(ctx, ctype.IsOctalDigit)
			if err != nil {
				return document.Number{}, err
			}
			return document.Number{Radix: 8, Negative: negative, Digits: digits}, nil
		case 'b':
			ctx.Read()
			ctx.Read()
			digits, err := p.parseRadixDigits(ctx, ctype.IsBinaryDigit)
			if err != nil {
				return document.Number{}, err
			}
			return document.Number{Radix: 2, Negative: negative, Digits: digits}, nil
		}
	}

	return p.parseDecimalNumber(ctx, negative)
}

func (p *Parser) parseRadixDigits(ctx *parsectx.Context, isDigit func(rune) bool) (string, error) {
	lead, err := ctx.Peek()
	if err != nil {
		return "", err
	}
	if lead == '_' {
		return "", &kdlerr.ParseError{Msg: "Digit separator cannot immediately follow a radix prefix"}
	}

	var b strings.Builder
	count := 0
	for {
		r, err := ctx.Peek()
		if err != nil {
			return "", err
		}
		if isDigit(r) {
			ctx.Read()
			b.WriteRune(r)
			count++
		} else if r == '_' && count > 0 {
			ctx.Read()
		} else {
			break
		}
	}
	if count == 0 {
		return "", &kdlerr.ParseError{Msg: "Expected at least one digit"}
	}
	return b.String(), nil
}

// parseDecimalNumber implements the radix-10 number state machine: an
// integer part, an optional fractional part, and an optional exponent,
// with '_' digit separators dropped throughout. It follows the source's
// permissive acceptance of a trailing '_' (silently dropped rather than
// rejected, per the open design question on separator strictness).
func (p *Parser) parseDecimalNumber(ctx *parsectx.Context, negative bool) (document.Number, error) {
	var intPart, fracPart, expPart strings.Builder
	inFraction := false
	inExponent := false
	expNegative := false
	signLegal := false
	sawExponentSign := false

	first, err := ctx.Peek()
	if err != nil {
		return document.Number{}, err
	}
	if !ctype.IsDecimalDigit(first) {
		return document.Number{}, &kdlerr.InternalError{Cause: fmt.Errorf("decimal number parser entered without a leading digit")}
	}

loop:
	for {
		r, err := ctx.Peek()
		if err != nil {
			return document.Number{}, err
		}
		switch {
		case ctype.IsDecimalDigit(r):
			ctx.Read()
			signLegal = false
			switch {
			case inExponent:
				expPart.WriteRune(r)
			case inFraction:
				fracPart.WriteRune(r)
			default:
				intPart.WriteRune(r)
			}

		case r == '.':
			if inExponent || inFraction {
				return document.Number{}, &kdlerr.ParseError{Msg: "Unexpected '.' in number"}
			}
			next, err := ctx.PeekAt(1)
			if err != nil {
				return document.Number{}, err
			}
			if !ctype.IsDecimalDigit(next) {
				return document.Number{}, &kdlerr.ParseError{Msg: "Expected a decimal digit after '.'"}
			}
			ctx.Read()
			inFraction = true
			signLegal = false

		case r == 'e' || r == 'E':
			if inExponent {
				return document.Number{}, &kdlerr.ParseError{Msg: "Unexpected second exponent marker"}
			}
			next, err := ctx.PeekAt(1)
			if err != nil {
				return document.Number{}, err
			}
			if next == '_' {
				return document.Number{}, &kdlerr.ParseError{Msg: "Digit separator cannot follow an exponent marker"}
			}
			ctx.Read()
			inExponent = true
			signLegal = true
			sawExponentSign = false

		case r == '_':
			ctx.Read()
			signLegal = false

		case ctype.IsSign(r):
			if !signLegal || sawExponentSign {
				return document.Number{}, &kdlerr.ParseError{Msg: "Unexpected sign in number"}
			}
			ctx.Read()
			expNegative = r == '-'
			sawExponentSign = true
			signLegal = false

		default:
			break loop
		}
	}

	if intPart.Len() == 0 {
		return document.Number{}, &kdlerr.InternalError{Cause: fmt.Errorf("decimal number parsed with no integer digits")}
	}
	if inFraction && fracPart.Len() == 0 {
		return document.Number{}, &kdlerr.InternalError{Cause: fmt.Errorf("decimal number parsed with an empty fraction")}
	}
	if inExponent {
		if expPart.Len() == 0 {
			return document.Number{}, &kdlerr.ParseError{Msg: "Expected digits in exponent"}
		}
		if expPart.Len() > 10 {
			return document.Number{}, &kdlerr.InternalError{Cause: fmt.Errorf("exponent of %d digits exceeds representable length", expPart.Len())}
		}
	}

	return document.Number{
		Radix:       10,
		Negative:    negative,
		Digits:      intPart.String(),
		Frac:        fracPart.String(),
		HasFrac:     inFraction,
		HasExponent: inExponent,
		ExpNegative: expNegative,
		Exp:         expPart.String(),
	}, nil
}
