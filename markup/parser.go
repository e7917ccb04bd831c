package markup

import "fmt"

// Parse parses template source into a single root node, resolving component
// tags against reg. The enclosing component (nil at the top level) becomes
// the parent of every component instantiated at this nesting level; within a
// component-backed element's body the new instance takes over as enclosing.
//
// The template language permits exactly one top-level element. Returns a
// *ParseError or *LexError on failure; no partial tree is returned.
func Parse(enclosing Component, src []byte, reg Registry) (*Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, src: src, reg: reg}

	node, next, err := p.parseElement(0, len(tokens), enclosing)
	if err != nil {
		return nil, err
	}

	if next != len(tokens) {
		return nil, &ParseError{
			Kind:    ErrOnlyOneTopLevel,
			Message: "only one top-level element is allowed",
			Tok:     tokens[next],
			Src:     src,
		}
	}
	return node, nil
}

type parser struct {
	tokens []Token
	src    []byte
	reg    Registry
}

// tokenAt returns the token at index i, or a synthetic end-of-input token
// positioned after the last real token.
func (p *parser) tokenAt(i int) Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	if len(p.tokens) == 0 {
		return Token{Pos: Position{Line: 1, Column: 1}}
	}
	last := p.tokens[len(p.tokens)-1]
	return Token{
		Pos: Position{
			Line:   last.Pos.Line,
			Column: last.Pos.Column + len(last.Text),
			Offset: last.Pos.Offset + len(last.Text),
		},
	}
}

func (p *parser) errorf(kind ErrorKind, tok Token, format string, args ...any) error {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Tok:     tok,
		Src:     p.src,
	}
}

// parseElement parses one element from the token range [start, end) and
// returns the node plus the index immediately following it, so callers can
// thread position through sibling parses.
func (p *parser) parseElement(start, end int, enclosing Component) (*Node, int, error) {
	if start >= end || p.tokens[start].Kind != TokenOpenTag {
		return nil, 0, p.errorf(ErrExpectingElement, p.tokenAt(start), "expecting an element")
	}

	if start+1 >= end || p.tokens[start+1].Kind != TokenIdent {
		return nil, 0, p.errorf(ErrExpectingIdentifier, p.tokenAt(start+1), "expecting an element name")
	}
	// The name token attributes all later errors for this element.
	nameTok := p.tokens[start+1]
	name := nameTok.Text

	attrs, i, err := p.parseAttrs(start+2, end)
	if err != nil {
		return nil, 0, err
	}

	node := &Node{Tag: name, Attrs: attrs, Pos: nameTok.Pos}

	if err := p.resolveTag(node, nameTok, enclosing); err != nil {
		return nil, 0, err
	}

	// Self-closing form: '/' must be immediately followed by '>'.
	if p.tokens[i].Kind == TokenSlash {
		if i+1 >= end || p.tokens[i+1].Kind != TokenCloseTag {
			return nil, 0, p.errorf(ErrMalformedSelfClose, p.tokenAt(i+1), "expecting '>' after '/'")
		}
		return node, i + 2, nil
	}

	// Body form: the loop terminated on '>'.
	bodyStart := i + 1

	closeIdx, err := p.findMatchingClose(bodyStart, end, name, nameTok)
	if err != nil {
		return nil, 0, err
	}

	// The enclosing component for nested tags is the nearest component
	// ancestor being parsed, not the DOM parent.
	childEnclosing := enclosing
	if node.Component != nil {
		childEnclosing = node.Component
	}

	if closeIdx == bodyStart+1 && p.tokens[bodyStart].Kind == TokenContent {
		node.Text = p.tokens[bodyStart].Text
		node.IsText = true
	} else {
		k := bodyStart
		for k < closeIdx {
			child, next, err := p.parseElement(k, closeIdx, childEnclosing)
			if err != nil {
				return nil, 0, err
			}
			node.Children = append(node.Children, child)
			k = next
		}
	}

	// Advance past the four closing tokens: '<' '/' name '>'.
	if closeIdx+3 >= end || p.tokens[closeIdx+3].Kind != TokenCloseTag {
		return nil, 0, p.errorf(ErrNoClosingTag, nameTok, "closing tag for <%s> is malformed", name)
	}
	return node, closeIdx + 4, nil
}

// parseAttrs consumes attribute pairs until a '>' or '/' is seen, returning
// the attributes and the index of the terminating token.
func (p *parser) parseAttrs(i, end int) ([]Attr, int, error) {
	var attrs []Attr
	for {
		if i >= end {
			return nil, 0, p.errorf(ErrExpectingIdentifier, p.tokenAt(i), "unexpected end of input inside tag")
		}
		tok := p.tokens[i]
		if tok.Kind == TokenCloseTag || tok.Kind == TokenSlash {
			return attrs, i, nil
		}
		if tok.Kind != TokenIdent {
			return nil, 0, p.errorf(ErrExpectingIdentifier, tok, "expecting an attribute name, got %s", tok.Kind)
		}

		attr := Attr{Key: tok.Text, Pos: tok.Pos}
		i++

		if i < end && p.tokens[i].Kind == TokenEquals {
			i++
			if i >= end {
				return nil, 0, p.errorf(ErrExpectingIdentifier, p.tokenAt(i), "expecting an attribute value")
			}
			val := p.tokens[i]
			switch val.Kind {
			case TokenIdent, TokenSingleQuoted, TokenDoubleQuoted:
				attr.Value = val.Text
			default:
				return nil, 0, p.errorf(ErrExpectingIdentifier, val, "expecting an attribute value, got %s", val.Kind)
			}
			i++
		}

		attrs = append(attrs, attr)
	}
}

// resolveTag resolves the element name: registered component tags produce a
// component-backed wrapper; everything else must be a native element.
func (p *parser) resolveTag(node *Node, nameTok Token, enclosing Component) error {
	if p.reg != nil {
		if factory, ok := p.reg.Lookup(node.Tag); ok {
			comp := factory()
			comp.SetParent(enclosing)
			if name, ok := node.Attr("name"); ok && name != "" {
				comp.SetInstanceName(name)
			}
			node.Component = comp
			return nil
		}
	}
	if !IsNativeElement(node.Tag) {
		return p.errorf(ErrUnknownElement, nameTok, "unknown element <%s>", node.Tag)
	}
	return nil
}

// findMatchingClose scans forward for the close tag matching name, tracking
// a nesting depth counter for same-name inner elements. The sought close is
// the first '<' '/' name encountered while depth is 0.
func (p *parser) findMatchingClose(start, end int, name string, nameTok Token) (int, error) {
	depth := 0
	for i := start; i < end; i++ {
		if p.tokens[i].Kind != TokenOpenTag {
			continue
		}
		if i+1 < end && p.tokens[i+1].Kind == TokenIdent && p.tokens[i+1].Text == name {
			depth++
			i++
			continue
		}
		if i+2 < end &&
			p.tokens[i+1].Kind == TokenSlash &&
			p.tokens[i+2].Kind == TokenIdent &&
			p.tokens[i+2].Text == name {
			if depth == 0 {
				return i, nil
			}
			depth--
			i += 2
		}
	}
	return 0, p.errorf(ErrNoClosingTag, nameTok, "no closing tag for <%s>", name)
}
