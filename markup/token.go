package markup

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenIdent        TokenKind = iota // tag and attribute names, bare values
	TokenEquals                        // =
	TokenOpenTag                       // <
	TokenCloseTag                      // >
	TokenSlash                         // /
	TokenSingleQuoted                  // '...' verbatim, no escapes
	TokenDoubleQuoted                  // "..." verbatim, no escapes
	TokenContent                       // raw text inside an element body
)

var tokenNames = map[TokenKind]string{
	TokenIdent:        "identifier",
	TokenEquals:       "'='",
	TokenOpenTag:      "'<'",
	TokenCloseTag:     "'>'",
	TokenSlash:        "'/'",
	TokenSingleQuoted: "single-quoted string",
	TokenDoubleQuoted: "double-quoted string",
	TokenContent:      "content",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by Tokenize.
type Token struct {
	Kind TokenKind
	Text string // verbatim text content (quotes stripped for string tokens)
	Pos  Position
}

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}
