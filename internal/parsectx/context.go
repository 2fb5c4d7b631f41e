// Package parsectx implements component B of the KDL core: a parse context
// that wraps a character source with up to two runes of pushback, tracks
// line/column position, and can produce a caret-annotated error location
// snapshot. Once that snapshot has been produced the context is
// invalidated; any further use is a programmer error (InternalError), not a
// recoverable parse failure.
package parsectx

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kdlspec/kdl-go/internal/kdlerr"
)

// EOF is the rune sentinel returned by Read and Peek at end of input. It is
// never a valid KDL input character, so callers can compare against it
// directly instead of threading an ok bool through every call site.
const EOF rune = -1

const maxPushback = 2

// historyDepth is how many completed lines are retained behind the current
// one, so that Unread can restore the correct line buffer after crossing a
// line-space character.
const historyDepth = 3

// Context is the pushback-capable character reader described in spec
// component 4.B. It owns its input source exclusively for the duration of a
// parse.
type Context struct {
	r *bufio.Reader

	pushback    [maxPushback]rune
	pushbackLen int

	line   int
	column int

	// curLine accumulates the characters read so far on the current line,
	// for use in an error snapshot.
	curLine []rune
	// history holds up to historyDepth previously completed lines, most
	// recent last, so Unread can restore curLine after a line-space rune is
	// pushed back.
	history [][]rune

	invalidated bool
}

// New creates a Context reading from r.
func New(r io.Reader) *Context {
	return &Context{
		r:       bufio.NewReader(r),
		line:    1,
		column:  1,
		curLine: make([]rune, 0, 64),
	}
}

// errInvalidated is the cause (wrapped in an InternalError) of the panic
// raised when a Context is used after its error snapshot has been produced.
var errInvalidated = fmt.Errorf("parse context used after invalidation")

// checkValid panics with an InternalError if the context has
// already been invalidated; per spec §4.B this indicates a parser bug, not a
// user-input failure, so sub-parsers are not expected to recover from it.
func (c *Context) checkValid() {
	if c.invalidated {
		panic(&kdlerr.InternalError{Cause: errInvalidated})
	}
}

func isLineSpace(c rune) bool {
	switch c {
	case '\n', '\r', '\u0085', '\u000c', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// pushHistory records the just-completed line buffer and resets curLine.
func (c *Context) pushHistory() {
	line := make([]rune, len(c.curLine))
	copy(line, c.curLine)
	c.history = append(c.history, line)
	if len(c.history) > historyDepth {
		c.history = c.history[len(c.history)-historyDepth:]
	}
	c.curLine = c.curLine[:0]
}

// popHistory restores the most recently completed line as curLine,
// reversing pushHistory. It is only called from Unread, which only ever
// unwinds what Read most recently advanced, so history is guaranteed
// non-empty when it is needed.
func (c *Context) popHistory() {
	n := len(c.history)
	if n == 0 {
		// Defensive: spec bounds unread depth at 2, well within
		// historyDepth, so this should be unreachable from correct callers.
		c.curLine = c.curLine[:0]
		return
	}
	c.curLine = append(c.curLine[:0], c.history[n-1]...)
	c.history = c.history[:n-1]
}

// Read consumes and returns the next rune from the input. At end of input it
// returns EOF; it never returns an error for ordinary end of stream. A
// non-nil error is only returned for malformed UTF-8 or an underlying I/O
// failure, represented by IOError.
func (c *Context) Read() (rune, error) {
	c.checkValid()

	if c.pushbackLen > 0 {
		r := c.pushback[c.pushbackLen-1]
		c.pushbackLen--
		c.advance(r)
		return r, nil
	}

	r, _, err := c.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF, nil
		}
		return EOF, &kdlerr.IOError{Cause: err, Location: c.snapshotAt(c.line, c.column)}
	}
	if r == '\uFFFD' {
		return EOF, &kdlerr.IOError{Cause: fmt.Errorf("invalid UTF-8 input"), Location: c.snapshotAt(c.line, c.column)}
	}

	c.advance(r)
	return r, nil
}

// advance updates line/column bookkeeping and the current-line buffer for a
// rune that has just been consumed by Read.
func (c *Context) advance(r rune) {
	if isLineSpace(r) {
		c.curLine = append(c.curLine, r)
		c.pushHistory()
		c.line++
		c.column = 1
	} else {
		c.curLine = append(c.curLine, r)
		c.column++
	}
}

// retreat reverses advance for a rune about to be pushed back by Unread.
func (c *Context) retreat(r rune) {
	if isLineSpace(r) {
		c.line--
		c.popHistory()
		c.column = len(c.curLine) + 1
	} else {
		if len(c.curLine) > 0 {
			c.curLine = c.curLine[:len(c.curLine)-1]
		}
		if c.column > 1 {
			c.column--
		}
	}
}

// Peek returns the next rune without consuming it.
func (c *Context) Peek() (rune, error) {
	c.checkValid()
	r, err := c.Read()
	if err != nil {
		return EOF, err
	}
	if r != EOF {
		if uerr := c.unreadChecked(r); uerr != nil {
			return EOF, uerr
		}
	}
	return r, nil
}

// PeekAt returns the rune n positions ahead (0 meaning the same as Peek)
// without consuming any input. n must be less than the pushback depth (2).
func (c *Context) PeekAt(n int) (rune, error) {
	c.checkValid()
	if n < 0 || n >= maxPushback {
		return EOF, &kdlerr.InternalError{Cause: fmt.Errorf("peek depth %d exceeds pushback buffer", n), Location: c.snapshot()}
	}

	runes := make([]rune, 0, n+1)
	hitEOF := false
	for i := 0; i <= n; i++ {
		r, err := c.Read()
		if err != nil {
			for j := len(runes) - 1; j >= 0; j-- {
				_ = c.unreadChecked(runes[j])
			}
			return EOF, err
		}
		if r == EOF {
			hitEOF = true
			break
		}
		runes = append(runes, r)
	}
	for j := len(runes) - 1; j >= 0; j-- {
		if err := c.unreadChecked(runes[j]); err != nil {
			return EOF, err
		}
	}
	if hitEOF || len(runes) <= n {
		return EOF, nil
	}
	return runes[n], nil
}

// Unread pushes c back onto the context so the next Read/Peek returns it
// again. Unreading EOF is illegal. Unreading more than two runes deep (the
// declared pushback capacity) is an InternalError.
func (c *Context) Unread(r rune) error {
	c.checkValid()
	return c.unreadChecked(r)
}

func (c *Context) unreadChecked(r rune) error {
	if r == EOF {
		return &kdlerr.InternalError{Cause: fmt.Errorf("cannot unread EOF"), Location: c.snapshot()}
	}
	if c.pushbackLen >= maxPushback {
		return &kdlerr.InternalError{Cause: fmt.Errorf("unread exceeds pushback buffer depth %d", maxPushback), Location: c.snapshot()}
	}
	c.retreat(r)
	c.pushback[c.pushbackLen] = r
	c.pushbackLen++
	return nil
}

// Line returns the current 1-based line number.
func (c *Context) Line() int { return c.line }

// Column returns the current 1-based column number.
func (c *Context) Column() int { return c.column }

// snapshot renders the current line and column as a caret-annotated error
// location, without reading ahead to the end of the line and without
// invalidating the context. It is used internally to annotate IOError and
// InternalError values raised mid-read.
func (c *Context) snapshot() string {
	return c.snapshotAt(c.line, c.column)
}

func (c *Context) snapshotAt(line, column int) string {
	return fmt.Sprintf("Line %d:\n%s\n%s^", line, string(c.curLine), caretPad(column))
}

func caretPad(column int) string {
	n := column - 1
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}

// ErrorLocation reads the remainder of the current line into the buffer,
// invalidates the context, and returns a two-line message:
//
//	Line N:
//	<line>
//	----^
//
// with the caret positioned under the offending column. After this call,
// any further Read/Peek/Unread/ErrorLocation call panics.
func (c *Context) ErrorLocation() string {
	c.checkValid()
	line, column := c.line, c.column

	for {
		r, _, err := c.r.ReadRune()
		if err != nil {
			break
		}
		if isLineSpace(r) {
			break
		}
		c.curLine = append(c.curLine, r)
	}

	msg := c.snapshotAt(line, column)
	c.invalidated = true
	return msg
}

// Invalidated reports whether ErrorLocation has already been called on this
// context.
func (c *Context) Invalidated() bool {
	return c.invalidated
}
