package sanitizehtml

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TagClass is the verdict of the tag policy for an element name.
type TagClass int

const (
	// Unknown elements are neither forbidden nor allowed. Their markup is
	// dropped and their children are kept.
	Unknown TagClass = iota
	// Allowed elements are kept in the output.
	Allowed
	// Forbidden elements are dropped together with everything inside them.
	Forbidden
)

func (self TagClass) String() string {
	switch self {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Directive says what happens to a node once the walk is over.
type Directive int

const (
	// Keep leaves the node and its processed subtree in place.
	Keep Directive = iota
	// Unwrap deletes the node and moves its children into its position.
	Unwrap
	// Eliminate deletes the node and its whole subtree.
	Eliminate
)

func (self Directive) String() string {
	switch self {
	case Unwrap:
		return "unwrap"
	case Eliminate:
		return "eliminate"
	}
	return "keep"
}

// ClassifyTag reports how the tag policy treats an element name. Names are
// matched case-insensitively.
func ClassifyTag(name string) TagClass {
	name = strings.ToLower(name)
	if _, ok := forbiddenSet[name]; ok {
		return Forbidden
	}
	if _, ok := allowedSet[name]; ok {
		return Allowed
	}
	return Unknown
}

func classifyNode(n *html.Node) Directive {
	switch n.Type {
	case html.TextNode:
		return Keep
	case html.ElementNode:
	default:
		// comments, doctypes and anything else that can't be rendered safely
		return Eliminate
	}

	switch ClassifyTag(n.Data) {
	case Forbidden:
		return Eliminate
	case Unknown:
		return Unwrap
	}

	switch {
	case n.Namespace != "":
		// svg and math elements share names with allowed ones, but don't
		// parse or render like them
		return Unwrap
	case n.FirstChild != nil && voidElement(n.DataAtom):
		// html.Render refuses void elements with children
		return Unwrap
	case n.DataAtom == atom.Input && !checkbox(n):
		return Unwrap
	}
	return Keep
}

func voidElement(a atom.Atom) bool {
	switch a {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Keygen, atom.Link, atom.Meta, atom.Param,
		atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

func checkbox(n *html.Node) bool {
	attr := attrRef(n, "type")
	return attr != nil && attr.Val == "checkbox"
}
