package markup

// nativeElements lists the HTML element names the parser accepts for plain
// structural nodes. A tag that is neither a registered component nor listed
// here fails the parse with ErrUnknownElement.
var nativeElements = map[string]bool{
	// Document sections
	"html": true, "head": true, "body": true, "title": true,
	"header": true, "footer": true, "main": true, "nav": true,
	"section": true, "article": true, "aside": true, "address": true,

	// Grouping content
	"div": true, "p": true, "pre": true, "blockquote": true,
	"ol": true, "ul": true, "li": true, "dl": true, "dt": true, "dd": true,
	"figure": true, "figcaption": true, "hr": true,

	// Text-level semantics
	"a": true, "span": true, "strong": true, "em": true, "b": true,
	"i": true, "u": true, "s": true, "small": true, "sub": true,
	"sup": true, "code": true, "kbd": true, "samp": true, "var": true,
	"mark": true, "q": true, "cite": true, "abbr": true, "time": true,
	"br": true, "wbr": true,

	// Headings
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,

	// Embedded content
	"img": true, "picture": true, "source": true, "video": true,
	"audio": true, "track": true, "iframe": true, "embed": true,
	"object": true, "canvas": true, "svg": true, "map": true, "area": true,

	// Tables
	"table": true, "caption": true, "thead": true, "tbody": true,
	"tfoot": true, "tr": true, "th": true, "td": true,
	"colgroup": true, "col": true,

	// Forms
	"form": true, "label": true, "input": true, "button": true,
	"select": true, "option": true, "optgroup": true, "textarea": true,
	"fieldset": true, "legend": true, "datalist": true, "output": true,
	"progress": true, "meter": true,

	// Interactive and misc
	"details": true, "summary": true, "dialog": true, "template": true,
	"slot": true, "noscript": true, "script": true, "style": true,
	"link": true, "meta": true, "base": true,
}

// voidElements are elements that never have body content. Materialization
// backends use this to emit self-closing output.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsNativeElement reports whether name is a known HTML element.
func IsNativeElement(name string) bool {
	return nativeElements[name]
}

// IsVoidElement reports whether name is a void element (no body content).
func IsVoidElement(name string) bool {
	return voidElements[name]
}
