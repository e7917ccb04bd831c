package markup

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of a parse failure.
type ErrorKind int

const (
	ErrExpectingElement    ErrorKind = iota // token other than '<' where an element must start
	ErrExpectingIdentifier                  // non-identifier in tag-name or attribute position
	ErrUnknownElement                       // tag is neither a registered component nor a native element
	ErrNoClosingTag                         // no matching close tag at the same nesting depth
	ErrOnlyOneTopLevel                      // leftover tokens after the first top-level element
	ErrMalformedSelfClose                   // '/' inside a tag not followed by '>'
	ErrMalformedToken                       // tokenizer fault (unterminated quoted string)
)

var errorKindNames = map[ErrorKind]string{
	ErrExpectingElement:    "expecting element",
	ErrExpectingIdentifier: "expecting identifier",
	ErrUnknownElement:      "unknown element",
	ErrNoClosingTag:        "no closing tag",
	ErrOnlyOneTopLevel:     "only one top-level element allowed",
	ErrMalformedSelfClose:  "malformed self-closing element",
	ErrMalformedToken:      "malformed token",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// ParseError is the base error type for all markup errors. It carries the
// offending token and the original source so callers can render an excerpt.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Tok     Token
	Src     []byte
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Tok.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Tok.Pos.Line, e.Tok.Pos.Column, msg)
	}
	return msg
}

// Excerpt renders a two-line source excerpt for the offending token: the
// full source line, then a caret/tilde underline spanning the token text.
//
//	<div klass=>
//	     ^~~~~
func (e *ParseError) Excerpt() string {
	if e.Tok.Pos.Line == 0 || len(e.Src) == 0 {
		return ""
	}

	srcLine := sourceLine(e.Src, e.Tok.Pos.Line)

	width := len(e.Tok.Text)
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	sb.WriteString(srcLine)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", e.Tok.Pos.Column-1))
	sb.WriteByte('^')
	sb.WriteString(strings.Repeat("~", width-1))
	return sb.String()
}

// LexError represents a tokenizer-level error (unterminated quoted string).
type LexError struct{ ParseError }

// sourceLine extracts the nth 1-based line of src without its terminator.
func sourceLine(src []byte, n int) string {
	line := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			if line == n {
				return strings.TrimSuffix(string(src[start:i]), "\r")
			}
			line++
			start = i + 1
		}
	}
	if line == n {
		return string(src[start:])
	}
	return ""
}
