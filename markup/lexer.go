package markup

// lexer tokenizes template source text in a single pass.
//
// The lexer is modal: consuming '>' switches it into element-body mode,
// consuming '<' switches it back. In body mode every non-whitespace run up
// to the next '<' becomes one Content token, taken verbatim.
type lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	inBody bool
}

// Tokenize converts template source into its flat token sequence.
// Returns a *LexError if a quoted string is left unterminated.
func Tokenize(src []byte) ([]Token, error) {
	l := &lexer{src: src, line: 1, col: 1}
	var tokens []Token
	for {
		tok, ok, err := l.scan()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t'
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.peek()) {
		l.advance()
	}
}

// scan returns the next token. The second result is false at end of input.
func (l *lexer) scan() (Token, bool, error) {
	l.skipWhitespace()
	if l.atEnd() {
		return Token{}, false, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	if l.inBody && ch != '<' {
		return l.scanContent(pos), true, nil
	}

	switch ch {
	case '<':
		l.advance()
		l.inBody = false
		return Token{Kind: TokenOpenTag, Text: "<", Pos: pos}, true, nil
	case '>':
		l.advance()
		l.inBody = true
		return Token{Kind: TokenCloseTag, Text: ">", Pos: pos}, true, nil
	case '/':
		l.advance()
		return Token{Kind: TokenSlash, Text: "/", Pos: pos}, true, nil
	case '=':
		l.advance()
		return Token{Kind: TokenEquals, Text: "=", Pos: pos}, true, nil
	case '\'', '"':
		tok, err := l.scanString(ch)
		if err != nil {
			return Token{}, false, err
		}
		return tok, true, nil
	}

	return l.scanIdent(pos), true, nil
}

// scanContent consumes a verbatim run up to the next '<' or end of input.
// Leading whitespace has already been skipped; interior whitespace is kept.
func (l *lexer) scanContent(pos Position) Token {
	start := l.pos
	for !l.atEnd() && l.peek() != '<' {
		l.advance()
	}
	return Token{Kind: TokenContent, Text: string(l.src[start:l.pos]), Pos: pos}
}

// scanString consumes a quoted string delimited by quote. Content between
// the quotes is taken verbatim with no escape processing.
func (l *lexer) scanString(quote byte) (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening quote

	start := l.pos
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Kind:    ErrMalformedToken,
				Message: "unterminated quoted string",
				Tok:     Token{Kind: quoteKind(quote), Text: string(l.src[start:l.pos]), Pos: pos},
				Src:     l.src,
			}}
		}
		if l.peek() == quote {
			text := string(l.src[start:l.pos])
			l.advance() // consume closing quote
			return Token{Kind: quoteKind(quote), Text: text, Pos: pos}, nil
		}
		l.advance()
	}
}

func quoteKind(quote byte) TokenKind {
	if quote == '\'' {
		return TokenSingleQuoted
	}
	return TokenDoubleQuoted
}

// scanIdent consumes the maximal run of characters that are not whitespace,
// a structural delimiter, or a quote.
func (l *lexer) scanIdent(pos Position) Token {
	start := l.pos
	for !l.atEnd() && !isIdentEnd(l.peek()) {
		l.advance()
	}
	return Token{Kind: TokenIdent, Text: string(l.src[start:l.pos]), Pos: pos}
}

func isIdentEnd(ch byte) bool {
	return isSpace(ch) || ch == '<' || ch == '>' || ch == '/' || ch == '=' || ch == '\'' || ch == '"'
}
