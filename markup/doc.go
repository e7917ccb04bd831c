// Package markup implements a parser for the Tendril template language.
//
// Tendril templates are a strict HTML-like markup: one top-level element per
// template, plain or quoted attribute values, self-closing elements, and raw
// text bodies. Tags whose names are registered as components resolve to
// component-backed nodes; everything else must be a known native element.
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Tokenizer: converts raw bytes into a flat token sequence with 1-based
//     line/column positions.
//   - Parser: consumes a token range and builds the node tree, matching
//     close tags by same-name nesting depth.
//   - Node types: the output data structures (Node, Attr, Position).
//
// Usage:
//
//	root, err := markup.Parse(nil, []byte(src), registry)
//	if err != nil {
//	    var perr *markup.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Excerpt())
//	    }
//	    log.Fatal(err)
//	}
//
// All parse failures are fatal to the enclosing Parse call; no partial tree
// is ever returned.
package markup
